package wordleService

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRow(id int, discordID, username, globalName, guildName string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "discord_id", "username", "global_name", "guild_name"}).
		AddRow(id, discordID, username, globalName, guildName)
}

func TestFindUserByMentionOrName_ByDiscordID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE discord_id = \\?").
		WithArgs("111", 1).
		WillReturnRows(userRow(1, "111", "alice", "Alice", "alice"))

	user, err := FindUserByMentionOrName(db, "111", "")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "111", user.DiscordID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByMentionOrName_IDWinsOverName(t *testing.T) {
	db, mock := newMockDB(t)

	// Only the ID lookup may run, even when a name is also supplied.
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE discord_id = \\?").
		WithArgs("111", 1).
		WillReturnRows(userRow(1, "111", "alice", "Alice", "alice"))

	user, err := FindUserByMentionOrName(db, "111", "somebody_else")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByMentionOrName_ByName(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("global_name = \\? OR username = \\? OR guild_name = \\?").
		WithArgs("alice", "alice", "alice", 1).
		WillReturnRows(userRow(1, "111", "alice", "Alice", "alice"))

	user, err := FindUserByMentionOrName(db, "", "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestFindUserByMentionOrName_NotFoundIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs("nobody", "nobody", "nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := FindUserByMentionOrName(db, "", "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
