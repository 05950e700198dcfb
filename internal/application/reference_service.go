package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/geo"
	"github.com/frotaops/route-manager/internal/repository"
)

// RegisterCountryRequest is the create/update body for countries.
type RegisterCountryRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Alpha2   string `json:"alpha2" binding:"required,len=2"`
	Alpha3   string `json:"alpha3" binding:"required,len=3"`
	Numeric3 string `json:"numeric3" binding:"required,len=3"`
}

// RegisterStateRequest is the create/update body for states.
type RegisterStateRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Code      string `json:"code" binding:"required,max=10"`
	CountryID string `json:"countryId" binding:"required,uuid"`
}

// RegisterCityRequest is the create/update body for cities.
type RegisterCityRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Code    string `json:"code" binding:"required,max=10"`
	StateID string `json:"stateId" binding:"required,uuid"`
}

// RegisterAddressRequest is the create/update body for addresses. Latitude
// and longitude must be supplied together or not at all.
type RegisterAddressRequest struct {
	Address       string           `json:"address" binding:"required,max=100"`
	Number        string           `json:"number" binding:"required,max=10"`
	Neighbourhood string           `json:"neighbourhood" binding:"required,max=60"`
	Reference     *string          `json:"reference" binding:"omitempty,max=60"`
	Complement    *string          `json:"complement" binding:"omitempty,max=60"`
	ZipCode       string           `json:"zipCode" binding:"required,min=5,max=8"`
	Latitude      *decimal.Decimal `json:"latitude"`
	Longitude     *decimal.Decimal `json:"longitude"`
	CityID        string           `json:"cityId" binding:"required,uuid"`
}

// ReferenceService implements the country/state/city/address use cases.
type ReferenceService struct {
	countries Store[domain.Country]
	states    Store[domain.State]
	cities    Store[domain.City]
	addresses Store[domain.Address]
	log       *zap.Logger
}

func NewReferenceService(
	countries Store[domain.Country],
	states Store[domain.State],
	cities Store[domain.City],
	addresses Store[domain.Address],
	log *zap.Logger,
) *ReferenceService {
	return &ReferenceService{
		countries: countries,
		states:    states,
		cities:    cities,
		addresses: addresses,
		log:       log,
	}
}

// --- Countries ---

func (s *ReferenceService) GetCountry(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	country, err := s.countries.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.NewNotFoundError("Country", id.String())
	}
	return country, nil
}

func (s *ReferenceService) ListCountries(ctx context.Context, page, limit int) ([]domain.Country, error) {
	return s.countries.List(ctx, page, limit)
}

func (s *ReferenceService) CreateCountry(ctx context.Context, req RegisterCountryRequest) (*domain.Country, error) {
	country, err := s.countries.Save(ctx, &domain.Country{
		ID:       uuid.New(),
		Name:     req.Name,
		Alpha2:   req.Alpha2,
		Alpha3:   req.Alpha3,
		Numeric3: req.Numeric3,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a country with the provided data",
			"use GET /api/v1/countries to inspect the existing entries")
	}
	s.log.Info("country created", zap.String("id", country.ID.String()))
	return country, nil
}

func (s *ReferenceService) UpdateCountry(ctx context.Context, id uuid.UUID, req RegisterCountryRequest) (*domain.Country, error) {
	country, err := s.countries.Update(ctx, id, &domain.Country{
		Name:     req.Name,
		Alpha2:   req.Alpha2,
		Alpha3:   req.Alpha3,
		Numeric3: req.Numeric3,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a country with the provided data",
			"use GET /api/v1/countries to inspect the existing entries")
	}
	return country, nil
}

func (s *ReferenceService) DeleteCountry(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	country, err := s.countries.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.NewNotFoundError("Country", id.String())
	}
	return country, nil
}

// ListStatesOfCountry returns all states referencing the given country.
func (s *ReferenceService) ListStatesOfCountry(ctx context.Context, countryID uuid.UUID) ([]domain.State, error) {
	if _, err := s.GetCountry(ctx, countryID); err != nil {
		return nil, err
	}
	return s.states.ListWhere(ctx, "country_id", countryID)
}

// --- States ---

func (s *ReferenceService) GetState(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	state, err := s.states.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.NewNotFoundError("State", id.String())
	}
	return state, nil
}

func (s *ReferenceService) ListStates(ctx context.Context, page, limit int) ([]domain.State, error) {
	return s.states.List(ctx, page, limit)
}

func (s *ReferenceService) CreateState(ctx context.Context, req RegisterStateRequest) (*domain.State, error) {
	countryID, err := parseRef("countryId", req.CountryID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.Save(ctx, &domain.State{
		ID:        uuid.New(),
		Name:      req.Name,
		Code:      req.Code,
		CountryID: countryID,
	})
	if err != nil {
		return nil, s.stateWriteError(err)
	}
	return state, nil
}

func (s *ReferenceService) UpdateState(ctx context.Context, id uuid.UUID, req RegisterStateRequest) (*domain.State, error) {
	countryID, err := parseRef("countryId", req.CountryID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.Update(ctx, id, &domain.State{
		Name:      req.Name,
		Code:      req.Code,
		CountryID: countryID,
	})
	if err != nil {
		return nil, s.stateWriteError(err)
	}
	return state, nil
}

func (s *ReferenceService) DeleteState(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	state, err := s.states.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.NewNotFoundError("State", id.String())
	}
	return state, nil
}

// ListCitiesOfState returns all cities referencing the given state.
func (s *ReferenceService) ListCitiesOfState(ctx context.Context, stateID uuid.UUID) ([]domain.City, error) {
	if _, err := s.GetState(ctx, stateID); err != nil {
		return nil, err
	}
	return s.cities.ListWhere(ctx, "state_id", stateID)
}

func (s *ReferenceService) stateWriteError(err error) error {
	err = decorateConflict(err,
		"There is already a state with the provided code and countryId",
		"use GET /api/v1/states to inspect the existing entries")
	return decorateForeignKey(err, map[string]fkMessage{
		"country": {
			Message: "Country not found",
			Hint:    "use GET /api/v1/countries to retrieve valid country ids",
		},
	})
}

// --- Cities ---

func (s *ReferenceService) GetCity(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	city, err := s.cities.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.NewNotFoundError("City", id.String())
	}
	return city, nil
}

func (s *ReferenceService) ListCities(ctx context.Context, page, limit int) ([]domain.City, error) {
	return s.cities.List(ctx, page, limit)
}

func (s *ReferenceService) CreateCity(ctx context.Context, req RegisterCityRequest) (*domain.City, error) {
	stateID, err := parseRef("stateId", req.StateID)
	if err != nil {
		return nil, err
	}

	city, err := s.cities.Save(ctx, &domain.City{
		ID:      uuid.New(),
		Name:    req.Name,
		Code:    req.Code,
		StateID: stateID,
	})
	if err != nil {
		return nil, s.cityWriteError(err)
	}
	return city, nil
}

func (s *ReferenceService) UpdateCity(ctx context.Context, id uuid.UUID, req RegisterCityRequest) (*domain.City, error) {
	stateID, err := parseRef("stateId", req.StateID)
	if err != nil {
		return nil, err
	}

	city, err := s.cities.Update(ctx, id, &domain.City{
		Name:    req.Name,
		Code:    req.Code,
		StateID: stateID,
	})
	if err != nil {
		return nil, s.cityWriteError(err)
	}
	return city, nil
}

func (s *ReferenceService) DeleteCity(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	city, err := s.cities.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.NewNotFoundError("City", id.String())
	}
	return city, nil
}

// ListAddressesOfCity returns all addresses referencing the given city.
func (s *ReferenceService) ListAddressesOfCity(ctx context.Context, cityID uuid.UUID) ([]domain.Address, error) {
	if _, err := s.GetCity(ctx, cityID); err != nil {
		return nil, err
	}
	return s.addresses.ListWhere(ctx, "city_id", cityID)
}

func (s *ReferenceService) cityWriteError(err error) error {
	err = decorateConflict(err,
		"There is already a city with the provided code",
		"use GET /api/v1/cities to inspect the existing entries")
	return decorateForeignKey(err, map[string]fkMessage{
		"state": {
			Message: "State not found",
			Hint:    "use GET /api/v1/states to retrieve valid state ids",
		},
	})
}

// --- Addresses ---

func (s *ReferenceService) GetAddress(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	address, err := s.addresses.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.NewNotFoundError("Address", id.String())
	}
	return address, nil
}

func (s *ReferenceService) ListAddresses(ctx context.Context, page, limit int) ([]domain.Address, error) {
	return s.addresses.List(ctx, page, limit)
}

func (s *ReferenceService) CreateAddress(ctx context.Context, req RegisterAddressRequest) (*domain.Address, error) {
	row, err := s.buildAddress(req)
	if err != nil {
		return nil, err
	}
	row.ID = uuid.New()

	address, err := s.addresses.Save(ctx, row)
	if err != nil {
		return nil, s.addressWriteError(err)
	}
	return address, nil
}

func (s *ReferenceService) UpdateAddress(ctx context.Context, id uuid.UUID, req RegisterAddressRequest) (*domain.Address, error) {
	row, err := s.buildAddress(req)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.Update(ctx, id, row)
	if err != nil {
		return nil, s.addressWriteError(err)
	}
	return address, nil
}

func (s *ReferenceService) DeleteAddress(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	address, err := s.addresses.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.NewNotFoundError("Address", id.String())
	}
	return address, nil
}

func (s *ReferenceService) buildAddress(req RegisterAddressRequest) (*domain.Address, error) {
	cityID, err := parseRef("cityId", req.CityID)
	if err != nil {
		return nil, err
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, domain.NewValidationError("latitude and longitude must be supplied together")
	}
	if req.Latitude != nil {
		point := geo.NewPoint(*req.Latitude, *req.Longitude)
		if !point.Valid() {
			return nil, domain.NewValidationError("latitude must be in [-90, 90] and longitude in [-180, 180]")
		}
	}

	return &domain.Address{
		Address:       req.Address,
		Number:        req.Number,
		Neighbourhood: req.Neighbourhood,
		Reference:     req.Reference,
		Complement:    req.Complement,
		ZipCode:       req.ZipCode,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		CityID:        cityID,
	}, nil
}

func (s *ReferenceService) addressWriteError(err error) error {
	err = decorateConflict(err,
		"There is already an address with the provided address, number and zipCode",
		"use GET /api/v1/addresses to inspect the existing entries")
	return decorateForeignKey(err, map[string]fkMessage{
		"city": {
			Message: "City not found",
			Hint:    "use GET /api/v1/cities to retrieve valid city ids",
		},
	})
}
