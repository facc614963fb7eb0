package store

import (
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-book/internal/password"
	"github.com/MKhiriev/go-recipe-book/models"
)

var (
	usersTable   = models.User{}.TableName()
	recipesTable = models.Recipe{}.TableName()

	userColumns = []string{"id", "username", "image_url", "bio"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.NewUser, hash password.Hash) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password_hash", "image_url", "bio").
		Values(user.Username, hash, user.ImageURL, user.Bio).
		Suffix("RETURNING id, username, image_url, bio").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildSelectCredentialsQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(slices.Concat(userColumns, []string{"password_hash"})...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertRecipeQuery(b sq.StatementBuilderType, recipe models.NewRecipe) (string, []any, error) {
	return b.Insert(recipesTable).
		Columns("title", "instructions", "minutes_to_complete", "user_id").
		Values(recipe.Title, recipe.Instructions, recipe.MinutesToComplete, recipe.UserID).
		Suffix("RETURNING id, title, instructions, minutes_to_complete, user_id").
		ToSql()
}

func buildSelectRecipesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(
		"r.id",
		"r.title",
		"r.instructions",
		"r.minutes_to_complete",
		"r.user_id",
		"u.username",
	).
		From(recipesTable + " r").
		Join(usersTable + " u ON u.id = r.user_id").
		OrderBy("r.id").
		ToSql()
}
