package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

func newReferenceService(
	countries *fakeStore[domain.Country],
	states *fakeStore[domain.State],
	cities *fakeStore[domain.City],
	addresses *fakeStore[domain.Address],
) *ReferenceService {
	if countries == nil {
		countries = &fakeStore[domain.Country]{}
	}
	if states == nil {
		states = &fakeStore[domain.State]{}
	}
	if cities == nil {
		cities = &fakeStore[domain.City]{}
	}
	if addresses == nil {
		addresses = &fakeStore[domain.Address]{}
	}
	return NewReferenceService(countries, states, cities, addresses, zap.NewNop())
}

func TestGetCountry_MissingRowIsNotFound(t *testing.T) {
	svc := newReferenceService(nil, nil, nil, nil)

	_, err := svc.GetCountry(context.Background(), uuid.New())

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Country", notFound.Entity)
}

func TestCreateCountry_AssignsIDAndPersists(t *testing.T) {
	countries := &fakeStore[domain.Country]{}
	svc := newReferenceService(countries, nil, nil, nil)

	country, err := svc.CreateCountry(context.Background(), RegisterCountryRequest{
		Name:     "Brazil",
		Alpha2:   "BR",
		Alpha3:   "BRA",
		Numeric3: "076",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, country.ID)
	assert.Equal(t, "BR", country.Alpha2)
	assert.Equal(t, 1, countries.saveCalls)
}

func TestCreateCountry_DecoratesConflicts(t *testing.T) {
	countries := &fakeStore[domain.Country]{
		saveFn: func(*domain.Country) (*domain.Country, error) {
			return nil, domain.NewConflictError("generic")
		},
	}
	svc := newReferenceService(countries, nil, nil, nil)

	_, err := svc.CreateCountry(context.Background(), RegisterCountryRequest{
		Name:     "Brazil",
		Alpha2:   "BR",
		Alpha3:   "BRA",
		Numeric3: "076",
	})

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "There is already a country with the provided data", conflict.Message)
	assert.NotEmpty(t, conflict.Hint)
}

func TestCreateState_MalformedCountryIDFailsBeforeStorage(t *testing.T) {
	states := &fakeStore[domain.State]{}
	svc := newReferenceService(nil, states, nil, nil)

	_, err := svc.CreateState(context.Background(), RegisterStateRequest{
		Name:      "Sao Paulo",
		Code:      "SP",
		CountryID: "nope",
	})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Zero(t, states.saveCalls)
}

func TestCreateState_DanglingCountryIsForeignKeyError(t *testing.T) {
	states := &fakeStore[domain.State]{
		saveFn: func(*domain.State) (*domain.State, error) {
			return nil, &domain.ForeignKeyError{
				Message:    "generic",
				Constraint: "fk_states_country_id",
			}
		},
	}
	svc := newReferenceService(nil, states, nil, nil)

	_, err := svc.CreateState(context.Background(), RegisterStateRequest{
		Name:      "Sao Paulo",
		Code:      "SP",
		CountryID: uuid.NewString(),
	})

	var fk *domain.ForeignKeyError
	require.ErrorAs(t, err, &fk)
	assert.Equal(t, "Country not found", fk.Message)
}

func TestListStatesOfCountry_ChecksParentFirst(t *testing.T) {
	svc := newReferenceService(nil, nil, nil, nil)

	_, err := svc.ListStatesOfCountry(context.Background(), uuid.New())

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Country", notFound.Entity)
}

func TestListStatesOfCountry_FiltersByCountryColumn(t *testing.T) {
	countryID := uuid.New()
	countries := &fakeStore[domain.Country]{
		getFn: func(repository.Filter) (*domain.Country, error) {
			return &domain.Country{ID: countryID}, nil
		},
	}
	states := &fakeStore[domain.State]{
		listWhereFn: func(column string, value any) ([]domain.State, error) {
			assert.Equal(t, "country_id", column)
			assert.Equal(t, countryID, value)
			return []domain.State{{ID: uuid.New(), CountryID: countryID}}, nil
		},
	}
	svc := newReferenceService(countries, states, nil, nil)

	result, err := svc.ListStatesOfCountry(context.Background(), countryID)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestCreateAddress_HalfCoordinatePairIsRejected(t *testing.T) {
	addresses := &fakeStore[domain.Address]{}
	svc := newReferenceService(nil, nil, nil, addresses)

	req := RegisterAddressRequest{
		Address:       "Avenida Paulista",
		Number:        "1578",
		Neighbourhood: "Bela Vista",
		ZipCode:       "01310200",
		Latitude:      decPtr(t, "-23.56140000"),
		CityID:        uuid.NewString(),
	}

	_, err := svc.CreateAddress(context.Background(), req)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Zero(t, addresses.saveCalls)
}

func TestCreateAddress_OutOfRangeCoordinatesAreRejected(t *testing.T) {
	addresses := &fakeStore[domain.Address]{}
	svc := newReferenceService(nil, nil, nil, addresses)

	req := RegisterAddressRequest{
		Address:       "Avenida Paulista",
		Number:        "1578",
		Neighbourhood: "Bela Vista",
		ZipCode:       "01310200",
		Latitude:      decPtr(t, "-95"),
		Longitude:     decPtr(t, "-46.65590000"),
		CityID:        uuid.NewString(),
	}

	_, err := svc.CreateAddress(context.Background(), req)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Zero(t, addresses.saveCalls)
}

func TestCreateAddress_PersistsWithoutCoordinates(t *testing.T) {
	addresses := &fakeStore[domain.Address]{}
	svc := newReferenceService(nil, nil, nil, addresses)

	address, err := svc.CreateAddress(context.Background(), RegisterAddressRequest{
		Address:       "Avenida Paulista",
		Number:        "1578",
		Neighbourhood: "Bela Vista",
		ZipCode:       "01310200",
		CityID:        uuid.NewString(),
	})
	require.NoError(t, err)

	assert.Nil(t, address.Latitude)
	assert.Nil(t, address.Longitude)
	assert.Equal(t, 1, addresses.saveCalls)
}

func TestDeleteAddress_MissingRowIsNotFound(t *testing.T) {
	svc := newReferenceService(nil, nil, nil, nil)

	_, err := svc.DeleteAddress(context.Background(), uuid.New())

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
