package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("   "))
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder("  ASC  "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder("sideways"))
}

func TestValidateSortField(t *testing.T) {
	allowed := map[string]bool{
		"id":          true,
		"created_at":  true,
		"total_cents": true,
	}

	t.Run("empty input falls back to the default", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("", allowed, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("   ", allowed, "created_at"))
	})

	t.Run("whitelisted field passes through", func(t *testing.T) {
		assert.Equal(t, "total_cents", ValidateSortField("total_cents", allowed, "created_at"))
		assert.Equal(t, "id", ValidateSortField("  id  ", allowed, "created_at"))
	})

	t.Run("unknown field falls back to the default", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("budget", allowed, "created_at"))
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("TOTAL_CENTS", allowed, "created_at"))
	})

	t.Run("empty default stays empty for unknown fields", func(t *testing.T) {
		assert.Equal(t, "", ValidateSortField("budget", allowed, ""))
	})
}

func TestSortFieldWhitelists(t *testing.T) {
	whitelists := map[string]map[string]bool{
		"CommonSortFields":   CommonSortFields,
		"EmployeeSortFields": EmployeeSortFields,
		"OrderSortFields":    OrderSortFields,
		"ReviewSortFields":   ReviewSortFields,
	}

	for name, whitelist := range whitelists {
		t.Run(name, func(t *testing.T) {
			for _, field := range []string{"id", "created_at", "updated_at"} {
				assert.True(t, whitelist[field], "%s should allow %q", name, field)
			}
		})
	}
}

func TestSortValidation_RejectsInjectionPayloads(t *testing.T) {
	payloads := []string{
		"created_at; DROP TABLE orders;--",
		"id' OR '1'='1",
		"id UNION SELECT api_token FROM employees",
		"total_cents, (SELECT api_token FROM employees)",
		"CASE WHEN 1=1 THEN id ELSE status END",
		"id/**/;DROP TABLE budget_rules",
		"id\n; DROP TABLE orders",
		"' OR ''='",
	}

	for _, payload := range payloads {
		assert.Equal(t, "created_at", ValidateSortField(payload, OrderSortFields, "created_at"),
			"sort field %q should fall back to the default", payload)
		assert.Equal(t, "DESC", ValidateSortOrder(payload),
			"sort order %q should fall back to DESC", payload)
	}
}
