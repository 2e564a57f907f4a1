package providers

import (
	"context"
	"fmt"
	"net"

	"github.com/9seconds/loglocate/loclib"
	"github.com/oschwald/geoip2-golang"
	"github.com/spf13/afero"
)

const maxmindLanguage = "en"

type maxmindProvider struct {
	cityDB *geoip2.Reader
	asnDB  *geoip2.Reader
}

func (m *maxmindProvider) Name() string {
	return NameMaxmind
}

func (m *maxmindProvider) Lookup(ctx context.Context, ip net.IP) (loclib.LocationRecord, error) {
	rv := loclib.LocationRecord{}

	if err := ctx.Err(); err != nil {
		return rv, err
	}

	city, err := m.cityDB.City(ip)
	if err != nil {
		return rv, fmt.Errorf("cannot lookup city: %w", err)
	}

	rv.City = city.City.Names[maxmindLanguage]
	rv.Country = city.Country.Names[maxmindLanguage]

	if m.asnDB != nil {
		asn, err := m.asnDB.ASN(ip)
		if err != nil {
			return rv, fmt.Errorf("cannot lookup autonomous system: %w", err)
		}

		rv.Organization = asn.AutonomousSystemOrganization
		rv.ASName = asn.AutonomousSystemOrganization
	}

	if rv == (loclib.LocationRecord{}) {
		return rv, loclib.NewServiceError(NameMaxmind, "address is not found in database", nil)
	}

	return rv, nil
}

func (m *maxmindProvider) Close() error {
	if m.asnDB != nil {
		m.asnDB.Close()
	}

	return m.cityDB.Close()
}

// NewMaxmind returns an offline provider which uses GeoLite2 databases.
// Databases are read from the given filesystem into memory.
//
// Supported parameters:
//
// city_db - path to GeoLite2-City.mmdb. Mandatory.
//
// asn_db - path to GeoLite2-ASN.mmdb. Optional, without it organization
// and AS name are unknown.
func NewMaxmind(fs afero.Fs, parameters map[string]string) (loclib.Provider, error) {
	cityPath := parameters["city_db"]
	if cityPath == "" {
		return nil, ErrDatabaseRequired
	}

	cityDB, err := maxmindOpen(fs, cityPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open city database: %w", err)
	}

	rv := &maxmindProvider{
		cityDB: cityDB,
	}

	if asnPath := parameters["asn_db"]; asnPath != "" {
		asnDB, err := maxmindOpen(fs, asnPath)
		if err != nil {
			cityDB.Close()

			return nil, fmt.Errorf("cannot open asn database: %w", err)
		}

		rv.asnDB = asnDB
	}

	return rv, nil
}

func maxmindOpen(fs afero.Fs, path string) (*geoip2.Reader, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	reader, err := geoip2.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize a reader of %s: %w", path, err)
	}

	return reader, nil
}
