package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDao 每個測試用獨立的in-memory sqlite，不依賴外部DB
func newTestDao(t *testing.T) *DbDao {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// in-memory sqlite每條連線是獨立DB，pool必須鎖在單一連線
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	dao := NewDbDao(conn)
	require.NoError(t, dao.InitMigrate())
	return dao
}
