package memberService

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type fakeMemberSource struct {
	members []*discordgo.Member
	calls   int
}

func (f *fakeMemberSource) GuildMembers(guildID string, after string, limit int, _ ...discordgo.RequestOption) ([]*discordgo.Member, error) {
	f.calls++
	if f.calls > 1 {
		return nil, nil
	}
	return f.members, nil
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm: %v", err)
	}

	return gormDB, mock
}

func member(id, username, globalName, nick string, bot bool) *discordgo.Member {
	return &discordgo.Member{
		Nick: nick,
		User: &discordgo.User{
			ID:         id,
			Username:   username,
			GlobalName: globalName,
			Bot:        bot,
		},
	}
}

func expectUpsert(mock sqlmock.Sqlmock, discordID string) {
	// FirstOrCreate: lookup misses, then the row is inserted and saved.
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs(discordID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestScanMembers_SkipsBots(t *testing.T) {
	db, mock := newMockDB(t)

	src := &fakeMemberSource{
		members: []*discordgo.Member{
			member("111", "alice", "Alice", "ally", false),
			member("999", "recapbot", "Recap Bot", "", true),
			member("222", "bob", "", "", false),
		},
	}

	expectUpsert(mock, "111")
	expectUpsert(mock, "222")

	count, err := ScanMembers(src, db, "guild")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanMembers_EmptyGuild(t *testing.T) {
	db, mock := newMockDB(t)

	src := &fakeMemberSource{}

	count, err := ScanMembers(src, db, "guild")
	require.NoError(t, err)

	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
