package generator

var firstNames = []string{
	"James", "Olivia", "Liam", "Charlotte", "Noah", "Amelia", "Oliver", "Isla", "William", "Mia",
	"Jack", "Grace", "Henry", "Chloe", "Lucas", "Ava", "Ethan", "Zoe", "Leo", "Ruby",
	"Haruto", "Yui", "Sota", "Hina", "Ren", "Sakura", "Kaito", "Aoi", "Yuto", "Mei",
	"Wing", "Ka Yan", "Chun", "Mei Ling", "Hoi", "Siu Ming", "Wei", "Jia Hui", "Jun Jie", "Xin Yi",
	"Arjun", "Priya", "Ravi", "Anika", "Daniel", "Sofia", "Ryan", "Hannah", "Marcus", "Elena",
}

var lastNames = []string{
	"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Anderson", "Thompson", "Nguyen", "Martin",
	"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Yamamoto", "Nakamura", "Kobayashi", "Kato",
	"Chan", "Wong", "Leung", "Cheung", "Lau", "Lee", "Ng", "Ho", "Tsang", "Lam",
	"Tan", "Lim", "Goh", "Koh", "Teo", "Ong", "Chua", "Kumar", "Singh", "Rahman",
}

var emailDomains = []string{
	"example.com", "mail.test", "inbox.test", "shopper.test", "post.example", "webmail.test",
}

var streetNames = []string{
	"George", "Pitt", "Collins", "Queen", "King", "Victoria", "Harbour", "Orchard", "Nathan", "Hennessy",
	"Chuo", "Sakura", "Marina", "Raffles", "Beach", "Park", "Hill", "Station", "Market", "River",
}

var streetSuffixes = []string{"Street", "Road", "Avenue", "Lane", "Drive", "Way", "Place", "Terrace"}

var (
	genders                  = []string{"Male", "Female", "Other"}
	communicationPreferences = []string{"Email", "SMS", "Phone", "Mail", "None"}
	productCategories        = []string{"Electronics", "Fashion", "Home", "Sports", "Beauty", "Books", "Toys", "Garden"}
	accountStatuses          = []string{"Active", "Active", "Active", "Active", "Inactive"}

	devices           = []string{"Desktop", "Mobile", "Tablet"}
	browsers          = []string{"Chrome", "Firefox", "Safari", "Edge", "Opera"}
	operatingSystems  = []string{"Windows", "macOS", "Android", "iOS", "Linux"}
	mobileSystems     = []string{"Android", "iOS"}
	tabletSystems     = []string{"Android", "iOS", "Windows"}
	referrers         = []string{"Google", "Facebook", "Twitter", "LinkedIn", "Direct", "Email", "Other"}
	pageCategories    = []string{"Home", "Product", "Category", "Search", "Cart", "Checkout", "Account", "Help", "Reviews", "Sale"}
	screenResolutions = []string{"1920x1080", "1366x768", "1440x900", "1536x864", "375x667", "414x896"}
	campaigns         = []string{"summer", "winter", "holiday", "launch", "promo"}
	utmMediums        = []string{"organic", "cpc", "email", "social", "direct"}
)
