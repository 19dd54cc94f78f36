package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresConfigConnString(t *testing.T) {
	t.Run("DSN優先", func(t *testing.T) {
		s, err := PostgresConfig{DSN: "postgres://u:p@localhost/rota", SupabaseURL: "https://x.supabase.co"}.ConnString()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@localhost/rota", s)
	})

	t.Run("SupabaseのURLから組み立てる", func(t *testing.T) {
		s, err := PostgresConfig{SupabaseURL: "https://abc.supabase.co/", Password: "secret"}.ConnString()
		require.NoError(t, err)
		assert.Equal(t, "host=db.abc.supabase.co port=6543 user=postgres password=secret dbname=postgres sslmode=require", s)
	})

	t.Run("パスワード未設定", func(t *testing.T) {
		_, err := PostgresConfig{SupabaseURL: "https://abc.supabase.co"}.ConnString()
		assert.Error(t, err)
	})
}
