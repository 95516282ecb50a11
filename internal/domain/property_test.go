package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProperty() Property {
	return Property{
		OwnerID:           1,
		Title:             "Speed lamp",
		Description:       "description",
		ThumbnailPhotoURL: "https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg?auto=compress&cs=tinysrgb&h=350",
		CoverPhotoURL:     "https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg",
		CostPerNight:      93061,
		ParkingSpaces:     6,
		NumberOfBathrooms: 4,
		NumberOfBedrooms:  8,
		Country:           "Canada",
		Street:            "536 Namsub Highway",
		City:              "Sotboske",
		Province:          "Quebec",
		PostCode:          "28142",
		Active:            true,
	}
}

func TestPropertyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Property)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *Property) {}},
		{name: "missing owner", mutate: func(p *Property) { p.OwnerID = 0 }, wantErr: true},
		{name: "missing title", mutate: func(p *Property) { p.Title = "" }, wantErr: true},
		{name: "bad thumbnail url", mutate: func(p *Property) { p.ThumbnailPhotoURL = "thumbnail" }, wantErr: true},
		{name: "negative cost", mutate: func(p *Property) { p.CostPerNight = -1 }, wantErr: true},
		{name: "cost above column range", mutate: func(p *Property) { p.CostPerNight = math.MaxInt32 + 1 }, wantErr: true},
		{name: "largest cost", mutate: func(p *Property) { p.CostPerNight = math.MaxInt32 }},
		{name: "negative bedrooms", mutate: func(p *Property) { p.NumberOfBedrooms = -2 }, wantErr: true},
		{name: "missing city", mutate: func(p *Property) { p.City = "" }, wantErr: true},
		{name: "empty description allowed", mutate: func(p *Property) { p.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProperty()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrValidation), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(5000), ToCents(50))
	assert.Equal(t, int64(12999), ToCents(129.99))
	assert.Equal(t, int64(1), ToCents(0.005))
	assert.Equal(t, int64(0), ToCents(0))
	assert.Equal(t, int64(math.MaxInt32), ToCents(MaxPricePerNight))
}

func TestValidPrice(t *testing.T) {
	assert.True(t, ValidPrice(0))
	assert.True(t, ValidPrice(MaxPricePerNight))
	assert.False(t, ValidPrice(MaxPricePerNight+1))
	assert.False(t, ValidPrice(math.Inf(1)))
	assert.False(t, ValidPrice(math.Inf(-1)))
	assert.False(t, ValidPrice(math.NaN()))
}
