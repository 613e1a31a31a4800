// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/models"
)

var (
	usersTable  = models.User{}.TableName()
	tweetsTable = models.Tweet{}.TableName()

	userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

	tweetWithAuthorColumns = []string{
		"t.id", "t.user_id", "t.content", "t.created_at", "t.updated_at",
		"u.id", "u.username", "u.email", "u.created_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID.String(), user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildUserExistsQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select("1").
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Where(sq.Eq{"id": user.ID.String()}).
		ToSql()
}

func buildDeleteUserTweetsQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	return b.Delete(tweetsTable).
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": userID.String()}).
		ToSql()
}

func buildInsertTweetQuery(b sq.StatementBuilderType, tweet models.Tweet) (string, []any, error) {
	return b.Insert(tweetsTable).
		Columns("id", "user_id", "content", "created_at").
		Values(tweet.ID.String(), tweet.UserID.String(), tweet.Content, tweet.CreatedAt).
		ToSql()
}

func selectTweetsWithAuthor(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(tweetWithAuthorColumns...).
		From(tweetsTable + " t").
		Join(usersTable + " u ON u.id = t.user_id")
}

func buildSelectTweetByIDQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	return selectTweetsWithAuthor(b).
		Where(sq.Eq{"t.id": id.String()}).
		ToSql()
}

func buildSelectAllTweetsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectTweetsWithAuthor(b).
		OrderBy("t.created_at DESC", "t.id DESC").
		ToSql()
}

func buildUpdateTweetQuery(b sq.StatementBuilderType, tweet models.Tweet, updatedAt time.Time) (string, []any, error) {
	return b.Update(tweetsTable).
		Set("content", tweet.Content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": tweet.ID.String(), "user_id": tweet.UserID.String()}).
		ToSql()
}

func buildDeleteTweetQuery(b sq.StatementBuilderType, id, userID uuid.UUID) (string, []any, error) {
	return b.Delete(tweetsTable).
		Where(sq.Eq{"id": id.String(), "user_id": userID.String()}).
		ToSql()
}
