package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

func sampleLoad() domain.Load {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := domain.Load{
		LoadID:     "load-1",
		RefNumber:  "FB-1001",
		Status:     domain.LoadStatusListed,
		CustomerID: "cust-1",
		Origin:     domain.Address{City: "Chicago", State: "IL", Zip: "60601"},
		Rate:       decimal.NewFromInt(1500),
	}
	l.CreatedAt = now
	l.LastUpdatedAt = now
	return l
}

func TestToLoadResponse_MissingJoinsYieldExplicitNulls(t *testing.T) {
	resp := ToLoadResponse(sampleLoad(), nil, nil)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	val, ok := decoded["customer"]
	assert.True(t, ok, "customer key must be present")
	assert.Nil(t, val)

	val, ok = decoded["carrier"]
	assert.True(t, ok, "carrier key must be present")
	assert.Nil(t, val)

	docs, ok := decoded["documentUrls"].([]any)
	assert.True(t, ok, "documentUrls must be an array, not null")
	assert.Empty(t, docs)
}

func TestToLoadResponse_JoinedSummariesAndMargin(t *testing.T) {
	l := sampleLoad()
	l.CarrierID = "carr-1"
	l.CarrierRate = decimal.NewFromInt(1200)
	customer := domain.Customer{CustomerID: "cust-1", CompanyName: "Acme Shipping", Email: "ops@acme.test"}
	carrier := domain.Carrier{CarrierID: "carr-1", CompanyName: "Fast Freight", MCNumber: "MC123456"}

	resp := ToLoadResponse(l, &customer, &carrier)

	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Acme Shipping", resp.Customer.CompanyName)
	require.NotNil(t, resp.Carrier)
	assert.Equal(t, "MC123456", resp.Carrier.MCNumber)
	assert.True(t, resp.Margin.Equal(decimal.NewFromInt(300)))
}

func TestToLoadListItem_CollapsesDocumentsToCount(t *testing.T) {
	l := sampleLoad()
	l.Destination = domain.Address{City: "Dallas", State: "TX"}
	l.DocumentURLs = []string{"/files/a.pdf", "/files/b.pdf"}

	item := ToLoadListItem(l, nil, nil)

	assert.Equal(t, 2, item.DocumentsCount)
	assert.Equal(t, "Chicago", item.OriginCity)
	assert.Equal(t, "Dallas", item.DestinationCity)
	assert.Nil(t, item.Customer)
}

func TestToAddressDTO_ZipCodeAlias(t *testing.T) {
	withNumeric := ToAddressDTO(domain.Address{Zip: "60601"})
	require.NotNil(t, withNumeric.ZipCode)
	assert.Equal(t, 60601, *withNumeric.ZipCode)

	withAlpha := ToAddressDTO(domain.Address{Zip: "K1A 0B1"})
	assert.Nil(t, withAlpha.ZipCode)
	assert.Equal(t, "K1A 0B1", withAlpha.Zip)
}
