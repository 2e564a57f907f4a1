package loclib

// UnknownValue is a placeholder for fields which were not resolved.
const UnknownValue = "Unknown"

// LocationRecord is a result of resolving a single IP address.
type LocationRecord struct {
	City         string `json:"city"`
	Country      string `json:"country"`
	Organization string `json:"organization"`
	ASName       string `json:"as_name"`
}

// Normalized returns a copy of the record where each empty field is
// replaced with UnknownValue.
func (l LocationRecord) Normalized() LocationRecord {
	return LocationRecord{
		City:         orUnknown(l.City),
		Country:      orUnknown(l.Country),
		Organization: orUnknown(l.Organization),
		ASName:       orUnknown(l.ASName),
	}
}

// UnknownLocation returns a record where all fields are unknown.
func UnknownLocation() LocationRecord {
	return LocationRecord{}.Normalized()
}

// Report summarizes a single run.
type Report struct {
	Addresses int         `json:"addresses"`
	Invalid   int         `json:"invalid"`
	Resolved  int         `json:"resolved"`
	Failed    int         `json:"failed"`
	Usage     *UsageStats `json:"usage"`
}

func orUnknown(value string) string {
	if value == "" {
		return UnknownValue
	}

	return value
}
