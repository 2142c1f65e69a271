// Package tables holds the fixed reference vocabularies the generator samples from.
package tables

// LocalCompanies are Barcelona-based employers.
var LocalCompanies = []string{
	"Glovo", "Typeform", "Wallapop", "TravelPerk", "Factorial", "Holded",
	"Camaloon", "Badi", "Kantox", "Redbooth", "Scytl", "Adevinta",
	"Softonic", "Privalia", "Vueling", "Seat", "Mango", "Desigual",
	"Cuatrecasas", "Banco Sabadell", "CaixaBank", "Agbar", "Naturgy",
	"Almirall", "Grifols", "Fluidra", "Ficosa", "Indra", "Everis",
}

// RemoteCompanies are employers that hire remotely.
var RemoteCompanies = []string{
	"Google", "Microsoft", "Amazon", "Meta", "Netflix", "Spotify",
	"Uber", "Airbnb", "Stripe", "GitHub", "Shopify", "Slack",
	"Zoom", "Figma", "Atlassian", "GitLab", "Notion", "Linear",
}

// FirstNames are Spanish given names.
var FirstNames = []string{
	"Maria", "David", "Laura", "Carlos", "Ana", "Miguel", "Elena", "Javier",
	"Carmen", "Antonio", "Isabel", "Francisco", "Pilar", "Manuel", "Rosa",
	"José", "Marta", "Alejandro", "Cristina", "Fernando", "Patricia",
	"Rafael", "Beatriz", "Sergio", "Nuria", "Alberto", "Lucía", "Pablo",
}

// LastNames are Spanish surnames.
var LastNames = []string{
	"García", "Martínez", "López", "Sánchez", "González", "Pérez",
	"Rodríguez", "Fernández", "Gómez", "Díaz", "Ruiz", "Hernández",
	"Jiménez", "Álvarez", "Moreno", "Muñoz", "Alonso", "Romero",
}

// Roles are job titles.
var Roles = []string{
	"Senior Frontend Developer", "Full Stack Developer", "Data Scientist",
	"Product Manager", "UX/UI Designer", "DevOps Engineer", "Backend Developer",
	"Mobile Developer", "Machine Learning Engineer", "Cloud Architect",
	"Tech Lead", "Software Architect", "QA Engineer",
}

// Skills are technical and methodology skills.
var Skills = []string{
	"JavaScript", "TypeScript", "Python", "React", "Vue.js", "Angular",
	"Node.js", "Django", "Flask", "PostgreSQL", "MongoDB", "Redis",
	"AWS", "Docker", "Kubernetes", "Git", "Jenkins", "Terraform",
	"Machine Learning", "Data Analysis", "Agile", "Scrum",
}

// Universities are Barcelona universities and business schools.
var Universities = []string{
	"Universitat Politècnica de Catalunya (UPC)",
	"Universitat de Barcelona (UB)",
	"Universitat Autònoma de Barcelona (UAB)",
	"Universitat Pompeu Fabra (UPF)",
	"ESADE Business School",
	"IESE Business School",
}

// Neighborhoods are Barcelona districts and neighborhoods.
var Neighborhoods = []string{
	"Eixample", "Gràcia", "Sarrià-Sant Gervasi", "Sant Martí",
	"Ciutat Vella", "Les Corts", "Sants-Montjuïc", "Poblenou", "El Born",
}

// Degrees are the degrees an education entry can carry.
var Degrees = []string{
	"Master's in Computer Science",
	"Bachelor's in Computer Engineering",
	"Master's in Data Science",
	"Bachelor's in Software Engineering",
}

// Languages lists the spoken languages attached to every record.
var Languages = []string{"Spanish (Native)", "English (Fluent)", "Catalan (Fluent)"}

// Certifications lists the certifications attached to every record.
var Certifications = []string{"AWS Certified Developer", "Google Analytics Certified"}

// SeniorityQualifiers are stripped from the title of an earlier position.
var SeniorityQualifiers = []string{"Senior ", "Lead "}

// femaleFirstNames selects the "women" portrait bucket.
var femaleFirstNames = map[string]struct{}{
	"Maria": {}, "Laura": {}, "Ana": {}, "Elena": {}, "Carmen": {}, "Isabel": {}, "Pilar": {},
	"Rosa": {}, "Marta": {}, "Cristina": {}, "Patricia": {}, "Beatriz": {}, "Nuria": {}, "Lucía": {},
}

var localCompanySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(LocalCompanies))
	for _, c := range LocalCompanies {
		set[c] = struct{}{}
	}
	return set
}()

// Portrait buckets used in profile image URLs.
const (
	PortraitWomen = "women"
	PortraitMen   = "men"
)

// PortraitBucket returns the portrait bucket for a first name.
func PortraitBucket(firstName string) string {
	if _, ok := femaleFirstNames[firstName]; ok {
		return PortraitWomen
	}
	return PortraitMen
}

// IsLocalCompany reports whether company is in LocalCompanies.
func IsLocalCompany(company string) bool {
	_, ok := localCompanySet[company]
	return ok
}

// AllCompanies returns a fresh slice of local followed by remote companies.
func AllCompanies() []string {
	all := make([]string, 0, len(LocalCompanies)+len(RemoteCompanies))
	all = append(all, LocalCompanies...)
	return append(all, RemoteCompanies...)
}
