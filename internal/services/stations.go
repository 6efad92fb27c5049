package services

// Hard-coded station and locality tables per city. The legacy app shipped
// these as a client-side mock; until a real transit API is wired up they stay
// a lookup table here.

var stationsByCity = map[string][]string{
	"Mumbai":    {"Dadar", "Andheri", "Borivali", "Churchgate", "CST"},
	"Thane":     {"Thane", "Mulund", "Kalwa", "Airoli"},
	"Mira Road": {"Mira Road", "Bhayander"},
	"Dahisar":   {"Dahisar", "Borivali"},
	"Bhayandar": {"Bhayander", "Naigaon"},
	"Delhi":     {"Connaught Place", "Rajiv Chowk", "Chandni Chowk"},
	"Bangalore": {"MG Road", "Indiranagar", "Whitefield"},
	"Pune":      {"Shivaji Nagar", "Hinjewadi", "Kothrud"},
}

var localitiesByCity = map[string][]string{
	"Mumbai":    {"Andheri East", "Andheri West", "Juhu", "Bandra", "Powai", "Malad", "Goregaon"},
	"Thane":     {"Ghodbunder Road", "Eastern Express Highway", "Wagle Estate", "Majiwada"},
	"Mira Road": {"Shanti Nagar", "Pleasant Park", "Shrishti Complex", "Beverly Park"},
	"Dahisar":   {"Anand Nagar", "Rawalpada", "Dahisar East", "Dahisar West"},
	"Bhayandar": {"Bhayandar East", "Bhayandar West", "Navghar", "Uttan"},
	"Delhi":     {"South Delhi", "North Delhi", "East Delhi", "Dwarka", "Noida"},
	"Bangalore": {"Koramangala", "HSR Layout", "Jayanagar", "JP Nagar"},
	"Pune":      {"Aundh", "Baner", "Viman Nagar", "Koregaon Park"},
}

// StationsByCity returns the known stations for a city, or an empty slice
func StationsByCity(city string) []string {
	return stationsByCity[city]
}

// LocalitiesByCity returns the known localities for a city, or an empty slice
func LocalitiesByCity(city string) []string {
	return localitiesByCity[city]
}
