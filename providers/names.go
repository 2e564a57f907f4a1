package providers

const (
	// Identifier for ip-api.com.
	NameIPAPI = "ip_api"

	// Identifier for ipinfo.io.
	NameIPInfo = "ipinfo"

	// Identifier for MaxMind GeoLite2 databases.
	NameMaxmind = "maxmind"
)

// Names is a list of all supported providers.
var Names = []string{
	NameIPAPI,
	NameIPInfo,
	NameMaxmind,
}

// Known tells if provider with such name is supported.
func Known(name string) bool {
	for _, v := range Names {
		if v == name {
			return true
		}
	}

	return false
}
