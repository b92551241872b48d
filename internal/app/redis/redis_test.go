package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"paperhelp/internal/app/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsDisabledCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	_, ok, err := c.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.SetCatalog(ctx, pricing.Catalog{}))
	assert.NoError(t, c.InvalidateCatalog(ctx))
	assert.NoError(t, c.Close())
}

func TestNilClientBlacklist(t *testing.T) {
	var c *Client
	ctx := context.Background()

	require.NoError(t, c.WriteJWTToBlacklist(ctx, "token", time.Minute))
	revoked, err := c.CheckJWTInBlacklist(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

// Справочник хранится в Redis в JSON, чтение должно вернуть те же значения
func TestCachedCatalogEncoding(t *testing.T) {
	catalog := pricing.Catalog{
		BasePricePerPage: decimal.RequireFromString("12.00"),
		Levels:           []pricing.Level{{ID: "undergrad", Name: "Undergraduate", Multiplier: decimal.RequireFromString("1.15")}},
		Deadlines: []pricing.Deadline{
			{Hours: 3, Label: "3 hours", Multiplier: decimal.RequireFromString("2.5"), Urgency: pricing.Urgent},
			{Hours: 168, Label: "7 days", Multiplier: decimal.RequireFromString("1.0"), Urgency: pricing.Standard},
		},
		Subjects: []pricing.Subject{{ID: 1, Name: "General", Multiplier: decimal.RequireFromString("1.0")}},
		Services: []pricing.Service{{ID: 1, Name: "Essay Writing", Icon: "📝", Multiplier: decimal.RequireFromString("1.0")}},
		Addons: []pricing.Addon{
			{ID: "turnitinAI", Name: "Turnitin AI Report", Price: decimal.RequireFromString("7.99"), Unit: pricing.UnitFlatFee},
			{ID: "powerpoint", Name: "PowerPoint Slides", Price: decimal.RequireFromString("5.00"), Unit: pricing.UnitPerSlide},
		},
	}

	raw, err := json.Marshal(catalog)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"urgent"`)

	var cached pricing.Catalog
	require.NoError(t, json.Unmarshal(raw, &cached))

	assert.True(t, catalog.BasePricePerPage.Equal(cached.BasePricePerPage))
	assert.True(t, decimal.RequireFromString("1.15").Equal(cached.Levels[0].Multiplier))
	require.Len(t, cached.Deadlines, 2)
	assert.Equal(t, pricing.Urgent, cached.Deadlines[0].Urgency)
	assert.True(t, decimal.RequireFromString("2.5").Equal(cached.Deadlines[0].Multiplier))
	assert.Equal(t, "📝", cached.Services[0].Icon)
	assert.Equal(t, pricing.UnitPerSlide, cached.Addons[1].Unit)

	// Цена по закэшированному справочнику совпадает с исходной
	cfg := pricing.DefaultConfig(catalog)
	cfg.Addons["turnitinAI"] = true
	assert.True(t, pricing.Compute(cfg, catalog).Equal(pricing.Compute(cfg, cached)))
}
