package tui

// option is a {label, value} record. The dropdown finds both fields
// without any mapping.
type option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type technology struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

type user struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

type product struct {
	SKU      string  `json:"sku"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	InStock  bool    `json:"inStock"`
	Category string  `json:"category"`
}

var fruitNames = []string{"Apple", "Banana", "Orange", "Mango", "Grape"}

var fruits = []option{
	{Label: "Apple", Value: "apple"},
	{Label: "Banana", Value: "banana"},
	{Label: "Orange", Value: "orange"},
	{Label: "Mango", Value: "mango"},
	{Label: "Grape", Value: "grape"},
	{Label: "Strawberry", Value: "strawberry"},
	{Label: "Watermelon", Value: "watermelon"},
	{Label: "Pineapple", Value: "pineapple"},
}

var languages = []option{
	{Label: "JavaScript", Value: "js"},
	{Label: "TypeScript", Value: "ts"},
	{Label: "Python", Value: "py"},
	{Label: "Ruby", Value: "rb"},
	{Label: "Go", Value: "go"},
}

var colors = []string{"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Pink"}

var technologies = []technology{
	{Label: "React Native", Value: "rn", Category: "Mobile"},
	{Label: "Flutter", Value: "flutter", Category: "Mobile"},
	{Label: "React", Value: "react", Category: "Web"},
	{Label: "Vue", Value: "vue", Category: "Web"},
	{Label: "Angular", Value: "angular", Category: "Web"},
	{Label: "Node.js", Value: "node", Category: "Backend"},
	{Label: "Django", Value: "django", Category: "Backend"},
}

var countries = []string{
	"United States",
	"United Kingdom",
	"Canada",
	"Australia",
	"Germany",
	"France",
	"Japan",
	"India",
	"Brazil",
	"Mexico",
}

var users = []user{
	{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin", Department: "Engineering", Avatar: "👨"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "User", Department: "Design", Avatar: "👩"},
	{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "Moderator", Department: "Marketing", Avatar: "🧑"},
	{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: "User", Department: "Engineering", Avatar: "👱"},
	{ID: 5, Name: "Charlie Wilson", Email: "charlie@example.com", Role: "User", Department: "Sales", Avatar: "🧔"},
}

var products = []product{
	{SKU: "IPHONE15", Title: "iPhone 15", Price: 999, InStock: true, Category: "Electronics"},
	{SKU: "MACBOOK", Title: "MacBook Pro", Price: 2499, InStock: true, Category: "Computers"},
	{SKU: "AIRPODS", Title: "AirPods Pro", Price: 249, InStock: false, Category: "Audio"},
	{SKU: "IPAD", Title: "iPad Air", Price: 599, InStock: true, Category: "Tablets"},
}
