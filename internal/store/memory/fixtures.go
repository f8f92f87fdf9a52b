// internal/store/memory/fixtures.go
package memory

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/atjshop/storefront/internal/models"
)

func ptr(v float64) *float64 { return &v }

var fixtureProducts = []models.Product{
	{
		ID:            "p1",
		Name:          "Pro Gaming Headset with Noise Cancellation",
		Price:         99.99,
		OriginalPrice: ptr(129.99),
		Images: []string{
			"https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1591090820869-4c5f8dee084e?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.7,
		ReviewCount: 128,
		Colors:      []string{"#000000", "#FF0000", "#0000FF"},
		Brand:       "AudioTech",
		Category:    "Headsets",
		Tags:        []string{"gaming", "audio", "wireless"},
		Featured:    true,
		InStock:     true,
	},
	{
		ID:            "p2",
		Name:          "10\" LED Ring Light with Tripod Stand",
		Price:         39.99,
		OriginalPrice: ptr(59.99),
		Images: []string{
			"https://images.unsplash.com/photo-1603574670812-d24560880210?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1595188325542-d66948195be6?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.5,
		ReviewCount: 97,
		Colors:      []string{"#000000", "#FFFFFF"},
		Brand:       "LumiPro",
		Category:    "Ring Lights",
		Tags:        []string{"streaming", "photography", "lighting"},
		Featured:    true,
		InStock:     true,
	},
	{
		ID:            "p3",
		Name:          "4K Webcam with Auto Focus",
		Price:         79.99,
		OriginalPrice: ptr(89.99),
		Images: []string{
			"https://images.unsplash.com/photo-1649859394657-8762d8a4c31c?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1596900779744-2bdc4a90509a?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.6,
		ReviewCount: 72,
		Colors:      []string{"#000000"},
		Brand:       "ViewMax",
		Category:    "Cameras",
		Tags:        []string{"streaming", "video", "conferencing"},
		InStock:     true,
	},
	{
		ID:            "p4",
		Name:          "Ergonomic Wireless Gaming Mouse",
		Price:         49.99,
		OriginalPrice: ptr(69.99),
		Images: []string{
			"https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1627831759945-45fdb1b52abf?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.8,
		ReviewCount: 203,
		Colors:      []string{"#000000", "#FFFFFF", "#FF0000"},
		Brand:       "GamerGear",
		Category:    "Mice",
		Tags:        []string{"gaming", "wireless", "ergonomic"},
		Featured:    true,
		InStock:     true,
	},
	{
		ID:    "p5",
		Name:  "Smart Home Tool Kit - 25 Pieces",
		Price: 69.99,
		Images: []string{
			"https://images.unsplash.com/photo-1581235720704-06d3acfcb36f?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1579613832125-5d34a13ffe2a?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.3,
		ReviewCount: 45,
		Colors:      []string{},
		Brand:       "ToolMaster",
		Category:    "Home Tools",
		Tags:        []string{"tools", "home", "DIY"},
		InStock:     true,
	},
	{
		ID:            "p6",
		Name:          "Bluetooth Sports Headphones",
		Price:         59.99,
		OriginalPrice: ptr(79.99),
		Images: []string{
			"https://images.unsplash.com/photo-1606400082777-ef05f3c5cde2?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1577174881658-0f30ed549adc?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.4,
		ReviewCount: 89,
		Colors:      []string{"#000000", "#FF0000", "#FFFFFF", "#00FF00"},
		Brand:       "SoundSport",
		Category:    "Headsets",
		Tags:        []string{"sports", "audio", "wireless"},
		InStock:     true,
	},
	{
		ID:            "p7",
		Name:          "18\" LED Ring Light with Remote",
		Price:         89.99,
		OriginalPrice: ptr(119.99),
		Images: []string{
			"https://images.unsplash.com/photo-1603574670812-d24560880210?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1617952236317-886e1a9e9e7a?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.7,
		ReviewCount: 62,
		Colors:      []string{"#000000"},
		Brand:       "LumiPro",
		Category:    "Ring Lights",
		Tags:        []string{"streaming", "photography", "professional"},
		Featured:    true,
		InStock:     true,
	},
	{
		ID:            "p8",
		Name:          "DSLR Camera with 18-55mm Lens",
		Price:         599.99,
		OriginalPrice: ptr(699.99),
		Images: []string{
			"https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=800&auto=format&fit=crop&q=60",
			"https://images.unsplash.com/photo-1520390138845-fd2d229dd553?w=800&auto=format&fit=crop&q=60",
		},
		Rating:      4.9,
		ReviewCount: 37,
		Colors:      []string{"#000000"},
		Brand:       "CapturePro",
		Category:    "Cameras",
		Tags:        []string{"photography", "professional", "DSLR"},
		Featured:    true,
		InStock:     true,
	},
}

var fixtureOrders = []models.Order{
	{
		ID:   "ORD-12345",
		Date: time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC),
		Customer: models.Customer{
			Name:    "John Doe",
			Email:   "john.doe@example.com",
			Address: "123 Main St, New York, NY 10001",
			Country: "United States",
		},
		Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Pro Gaming Headset with Noise Cancellation", Quantity: 1, Price: 99.99, Color: "#000000"},
			{ProductID: "p4", ProductName: "Ergonomic Wireless Gaming Mouse", Quantity: 1, Price: 49.99, Color: "#FF0000"},
		},
		TotalAmount: 149.98,
		Status:      models.OrderStatusDelivered,
		TrackingID:  "TRK-7890123",
	},
	{
		ID:   "ORD-12346",
		Date: time.Date(2023, 5, 20, 14, 45, 0, 0, time.UTC),
		Customer: models.Customer{
			Name:    "Jane Smith",
			Email:   "jane.smith@example.com",
			Address: "456 Park Ave, Los Angeles, CA 90001",
			Country: "United States",
		},
		Items: []models.OrderItem{
			{ProductID: "p2", ProductName: "10\" LED Ring Light with Tripod Stand", Quantity: 1, Price: 39.99},
		},
		TotalAmount: 39.99,
		Status:      models.OrderStatusShipped,
		TrackingID:  "TRK-7890124",
	},
	{
		ID:   "ORD-12347",
		Date: time.Date(2023, 5, 25, 9, 15, 0, 0, time.UTC),
		Customer: models.Customer{
			Name:    "Robert Johnson",
			Email:   "robert.j@example.com",
			Address: "789 Oak St, Chicago, IL 60007",
			Country: "United States",
		},
		Items: []models.OrderItem{
			{ProductID: "p8", ProductName: "DSLR Camera with 18-55mm Lens", Quantity: 1, Price: 599.99},
		},
		TotalAmount: 599.99,
		Status:      models.OrderStatusProcessing,
	},
}

var fixtureReviews = []models.Review{
	{
		ID:        "r1",
		ProductID: "p1",
		UserID:    "u1",
		UserName:  "GamerPro123",
		Rating:    5,
		Comment:   "Best gaming headset I've ever used. The noise cancellation is perfect for intense gaming sessions.",
		Date:      time.Date(2023, 4, 10, 15, 30, 0, 0, time.UTC),
	},
	{
		ID:        "r2",
		ProductID: "p1",
		UserID:    "u2",
		UserName:  "AudioEnthusiast",
		Rating:    4,
		Comment:   "Great sound quality, but could be more comfortable for long sessions.",
		Date:      time.Date(2023, 4, 15, 9, 45, 0, 0, time.UTC),
	},
	{
		ID:        "r3",
		ProductID: "p2",
		UserID:    "u3",
		UserName:  "StreamerJane",
		Rating:    5,
		Comment:   "Perfect lighting for my streams! Easy to set up and adjust.",
		Date:      time.Date(2023, 4, 18, 14, 20, 0, 0, time.UTC),
	},
	{
		ID:        "r4",
		ProductID: "p8",
		UserID:    "u4",
		UserName:  "PhotoHobbyist",
		Rating:    5,
		Comment:   "Amazing camera for beginners. The quality is outstanding for the price.",
		Date:      time.Date(2023, 4, 20, 11, 10, 0, 0, time.UTC),
	},
}

// Seed loads the fixture catalog, orders and reviews, and creates the demo
// admin account when no admin exists yet (users may already have been
// restored from a snapshot).
func (s *Store) Seed(adminEmail, adminPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]models.Product(nil), fixtureProducts...)
	s.orders = append([]models.Order(nil), fixtureOrders...)
	s.reviews = append([]models.Review(nil), fixtureReviews...)

	for _, u := range s.users {
		if u.Role == models.UserRoleAdmin {
			return nil
		}
	}

	admin := models.User{
		ID:        "admin-1",
		Email:     adminEmail,
		Name:      "Jessica Admin",
		Role:      models.UserRoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := admin.SetPassword(adminPassword); err != nil {
		return err
	}
	s.users = append(s.users, admin)
	s.persistUsers()

	logrus.WithField("email", adminEmail).Info("Seeded demo admin account")
	return nil
}
