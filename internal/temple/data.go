package temple

// Stock temple directory data. Distances are from the app's default city
// center; coordinates are fixed, not computed.

var defaultTemples = []Temple{
	{
		ID:            "1",
		Name:          "Siddhivinayak Temple",
		Deity:         "Lord Ganesha",
		Address:       "SK Bole Marg, Prabhadevi, Mumbai",
		DistanceKm:    0.5,
		Rating:        4.9,
		Image:         "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?w=400&h=300&fit=crop",
		Timings:       Timings{Morning: "5:30 AM - 12:00 PM", Evening: "4:00 PM - 9:30 PM"},
		DarshanStatus: DarshanAvailable,
		WaitTimeMins:  15,
		Coordinates:   Coordinates{Lat: 19.0168, Lng: 72.8299},
		Features:      []string{"Free Parking", "Wheelchair Access", "Prasad Available"},
	},
	{
		ID:            "2",
		Name:          "ISKCON Temple",
		Deity:         "Lord Krishna",
		Address:       "Hare Krishna Land, Juhu, Mumbai",
		DistanceKm:    2.3,
		Rating:        4.8,
		Image:         "https://images.unsplash.com/photo-1604608672516-f1b9b1b1b1b1?w=400&h=300&fit=crop",
		Timings:       Timings{Morning: "4:30 AM - 1:00 PM", Evening: "4:00 PM - 9:00 PM"},
		DarshanStatus: DarshanCrowded,
		WaitTimeMins:  45,
		Coordinates:   Coordinates{Lat: 19.1075, Lng: 72.8263},
		Features:      []string{"Restaurant", "Gift Shop", "Guided Tours"},
	},
	{
		ID:            "3",
		Name:          "Mahalakshmi Temple",
		Deity:         "Goddess Lakshmi",
		Address:       "Bhulabhai Desai Rd, Mumbai",
		DistanceKm:    1.8,
		Rating:        4.7,
		Image:         "https://images.unsplash.com/photo-1567591414240-e9c1e2e0e3f0?w=400&h=300&fit=crop",
		Timings:       Timings{Morning: "6:00 AM - 12:30 PM", Evening: "3:00 PM - 9:00 PM"},
		DarshanStatus: DarshanAvailable,
		WaitTimeMins:  20,
		Coordinates:   Coordinates{Lat: 18.9793, Lng: 72.8094},
		Features:      []string{"Sea View", "Prasad Available"},
	},
	{
		ID:            "4",
		Name:          "Mumbadevi Temple",
		Deity:         "Goddess Mumbadevi",
		Address:       "Zaveri Bazaar, Kalbadevi, Mumbai",
		DistanceKm:    3.1,
		Rating:        4.6,
		Image:         "https://images.unsplash.com/photo-1582555172866-f73bb12a2ab3?w=400&h=300&fit=crop",
		Timings:       Timings{Morning: "6:00 AM - 12:00 PM", Evening: "4:00 PM - 8:30 PM"},
		DarshanStatus: DarshanClosed,
		WaitTimeMins:  0,
		Coordinates:   Coordinates{Lat: 18.9500, Lng: 72.8310},
		Features:      []string{"Historic Site", "Market Nearby"},
	},
	{
		ID:            "5",
		Name:          "Babulnath Temple",
		Deity:         "Lord Shiva",
		Address:       "Babulnath Rd, Girgaon, Mumbai",
		DistanceKm:    2.7,
		Rating:        4.8,
		Image:         "https://images.unsplash.com/photo-1585136917228-a4cf2e00237b?w=400&h=300&fit=crop",
		Timings:       Timings{Morning: "5:00 AM - 12:00 PM", Evening: "4:00 PM - 10:00 PM"},
		DarshanStatus: DarshanAvailable,
		WaitTimeMins:  10,
		Coordinates:   Coordinates{Lat: 18.9637, Lng: 72.8093},
		Features:      []string{"Elevator Access", "Prasad Available", "Free Parking"},
	},
}
