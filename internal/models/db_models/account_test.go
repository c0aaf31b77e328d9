package db_models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Bookmarks and notes are listed by created_at, so it must resolve
// inserts made within the same second.
func TestPersonalizationRowsStampNanoseconds(t *testing.T) {
	for _, model := range []interface{}{&Bookmark{}, &Note{}} {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		field := s.LookUpField("CreatedAt")
		require.NotNil(t, field, s.Name)
		assert.Equal(t, "created_at", field.DBName, s.Name)
		assert.Equal(t, schema.UnixNanosecond, field.AutoCreateTime, s.Name)
	}
}
