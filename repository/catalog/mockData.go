package catalogrepo

import (
	"time"

	"bookjam/model"
)

var seededAt = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func entry(uid, url string) model.Entry {
	return model.Entry{UID: uid, URL: url, CreatedAt: seededAt, UpdatedAt: seededAt, Locale: "en-us"}
}

func img(uid, name string) model.Image {
	return model.Image{
		UID:         uid,
		URL:         "https://images.bookjam.example/" + name,
		Filename:    name,
		ContentType: "image/jpeg",
	}
}

func ptr[T any](v T) *T { return &v }

var mockAuthors = []model.Author{
	{Entry: entry("author-001", "/authors/chetan-bhagat"), Name: "Chetan Bhagat", Slug: "chetan-bhagat", Bio: "Indian author of contemporary fiction."},
	{Entry: entry("author-002", "/authors/amish-tripathi"), Name: "Amish Tripathi", Slug: "amish-tripathi", Bio: "Author of the Shiva Trilogy."},
	{Entry: entry("author-003", "/authors/james-clear"), Name: "James Clear", Slug: "james-clear", Website: "https://jamesclear.com"},
	{Entry: entry("author-004", "/authors/sudha-murty"), Name: "Sudha Murty", Slug: "sudha-murty", Bio: "Writer and philanthropist."},
	{Entry: entry("author-005", "/authors/morgan-housel"), Name: "Morgan Housel", Slug: "morgan-housel"},
	{Entry: entry("author-006", "/authors/ruskin-bond"), Name: "Ruskin Bond", Slug: "ruskin-bond"},
}

var mockCategories = []model.Category{
	{Entry: entry("cat-001", "/category/fiction"), Name: "Fiction", Slug: "fiction", Description: "Stories to get lost in", DisplayOrder: 1, IsFeatured: true, Color: "#E85D4A"},
	{Entry: entry("cat-002", "/category/mythology"), Name: "Mythology", Slug: "mythology", Description: "Ancient tales retold", DisplayOrder: 2, IsFeatured: true, Color: "#F2A65A"},
	{Entry: entry("cat-003", "/category/self-help"), Name: "Self-Help", Slug: "self-help", Description: "Grow a little every day", DisplayOrder: 3, IsFeatured: true, Color: "#4A90A4"},
	{Entry: entry("cat-004", "/category/business"), Name: "Business", Slug: "business", Description: "Money, markets and management", DisplayOrder: 4, Color: "#2E4057"},
	{Entry: entry("cat-005", "/category/kids-books"), Name: "Kids Books", Slug: "kids-books", Description: "Books for young readers", DisplayOrder: 5, IsFeatured: true, Color: "#7BC67E"},
	{Entry: entry("cat-006", "/category/biography"), Name: "Biography", Slug: "biography", Description: "Real lives, real lessons", DisplayOrder: 6, Color: "#9B72AA"},
}

func author(i int) model.Refs[model.Author]     { return model.Refs[model.Author]{mockAuthors[i]} }
func category(i int) model.Refs[model.Category] { return model.Refs[model.Category]{mockCategories[i]} }

var mockBooks = []model.Book{
	{
		Entry: entry("book-001", "/book/half-girlfriend"), Title: "Half Girlfriend", Slug: "half-girlfriend",
		Authors: author(0), Categories: category(0),
		Description:      "A story of love and ambition between Bihar and Delhi.",
		ShortDescription: "Love across class lines.",
		CoverImage:       img("img-001", "half-girlfriend.jpg"),
		Price:            199, OriginalPrice: ptr(250.0), DiscountPercentage: ptr(20.0),
		ISBN: "9788129135728", Publisher: "Rupa Publications", Pages: 280, Language: "English",
		Format: model.FormatPaperback, Rating: 4.1, ReviewCount: 1820,
		IsBestseller: true, StockQuantity: ptr(40),
	},
	{
		Entry: entry("book-002", "/book/the-immortals-of-meluha"), Title: "The Immortals of Meluha", Slug: "the-immortals-of-meluha",
		Authors: author(1), Categories: model.Refs[model.Category]{mockCategories[1], mockCategories[0]},
		Description: "Shiva, a Tibetan tribal leader, is hailed as the prophesied saviour of Meluha.",
		CoverImage:  img("img-002", "meluha.jpg"),
		Price:       424, OriginalPrice: ptr(499.0), DiscountPercentage: ptr(15.0),
		ISBN: "9789380658742", Publisher: "Westland", Pages: 436, Language: "English",
		Format: model.FormatPaperback, Tags: []string{"shiva", "trilogy"}, Rating: 4.5, ReviewCount: 5230,
		IsBestseller: true, IsFeatured: true, StockQuantity: ptr(25),
	},
	{
		Entry: entry("book-003", "/book/atomic-habits"), Title: "Atomic Habits", Slug: "atomic-habits",
		Authors: author(2), Categories: category(2),
		Description: "An easy and proven way to build good habits and break bad ones.",
		CoverImage:  img("img-003", "atomic-habits.jpg"),
		Price:       499, OriginalPrice: ptr(799.0), DiscountPercentage: ptr(38.0),
		ISBN: "9781847941831", Publisher: "Random House", Pages: 320, Language: "English",
		Format: model.FormatHardcover, Rating: 4.8, ReviewCount: 12040,
		IsBestseller: true, IsFeatured: true, StockQuantity: ptr(60),
	},
	{
		Entry: entry("book-004", "/book/wise-and-otherwise"), Title: "Wise and Otherwise", Slug: "wise-and-otherwise",
		Authors: author(3), Categories: category(5),
		Description: "A salute to life through fifty-one true stories.",
		CoverImage:  img("img-004", "wise-and-otherwise.jpg"),
		Price:       225, ISBN: "9780143062226", Publisher: "Penguin", Pages: 232, Language: "English",
		Format: model.FormatPaperback, Rating: 4.4, ReviewCount: 980,
		IsNewArrival: true, StockQuantity: ptr(18),
	},
	{
		Entry: entry("book-005", "/book/the-psychology-of-money"), Title: "The Psychology of Money", Slug: "the-psychology-of-money",
		Authors: author(4), Categories: model.Refs[model.Category]{mockCategories[3], mockCategories[2]},
		Description: "Timeless lessons on wealth, greed, and happiness.",
		CoverImage:  img("img-005", "psychology-of-money.jpg"),
		Price:       299, OriginalPrice: ptr(399.0), DiscountPercentage: ptr(25.0),
		ISBN: "9789390166268", Publisher: "Jaico", Pages: 252, Language: "English",
		Format: model.FormatPaperback, Rating: 4.7, ReviewCount: 8700,
		IsBestseller: true, IsNewArrival: true, StockQuantity: ptr(35),
	},
	{
		Entry: entry("book-006", "/book/the-blue-umbrella"), Title: "The Blue Umbrella", Slug: "the-blue-umbrella",
		Authors: author(5), Categories: category(4),
		Description: "A little girl in the Garhwal hills and the umbrella everyone wants.",
		CoverImage:  img("img-006", "blue-umbrella.jpg"),
		Price:       150, ISBN: "9788129108685", Publisher: "Rupa Publications", Pages: 96, Language: "English",
		Format: model.FormatPaperback, Rating: 4.6, ReviewCount: 640, AgeGroup: "8-12",
		IsNewArrival: true, IsFeatured: true, StockQuantity: ptr(50),
	},
	{
		Entry: entry("book-007", "/book/the-secret-of-the-nagas"), Title: "The Secret of the Nagas", Slug: "the-secret-of-the-nagas",
		Authors: author(1), Categories: category(1),
		Description: "The second book of the Shiva Trilogy.",
		CoverImage:  img("img-007", "nagas.jpg"),
		Price:       399, ISBN: "9789381626344", Publisher: "Westland", Pages: 396, Language: "English",
		Format: model.FormatEbook, Rating: 4.3, ReviewCount: 3100,
		IsNewArrival: true, StockQuantity: ptr(0),
	},
	{
		Entry: entry("book-008", "/book/grandmas-bag-of-stories"), Title: "Grandma's Bag of Stories", Slug: "grandmas-bag-of-stories",
		Authors: author(3), Categories: category(4),
		Description: "Stories from grandma's bag for children of all ages.",
		CoverImage:  img("img-008", "grandmas-bag.jpg"),
		Price:       199, ISBN: "9780143332022", Publisher: "Puffin", Pages: 192, Language: "English",
		Format: model.FormatAudiobook, Rating: 4.7, ReviewCount: 2200, AgeGroup: "6-10",
		IsBestseller: true, StockQuantity: ptr(70),
	},
}

var mockBanners = []model.Banner{
	{
		Entry: entry("banner-001", "/"), Title: "Summer Reading Festival", Subtitle: "Up to 40% off bestsellers",
		BackgroundImage: img("banner-img-001", "summer.jpg"), CTAText: "Shop now", CTALink: "/bestsellers",
		TextColor: "light", DisplayOrder: 1, IsActive: true,
	},
	{
		Entry: entry("banner-002", "/"), Title: "New Arrivals", Subtitle: "Fresh off the press",
		BackgroundImage: img("banner-img-002", "new-arrivals.jpg"), CTAText: "Explore", CTALink: "/new-arrivals",
		TextColor: "dark", DisplayOrder: 2, IsActive: true,
	},
	{
		Entry: entry("banner-003", "/"), Title: "Holiday Gift Cards", Subtitle: "Back in December",
		BackgroundImage: img("banner-img-003", "gift-cards.jpg"), CTAText: "Learn more", CTALink: "/gift-cards",
		TextColor: "light", DisplayOrder: 3, IsActive: false,
	},
}
