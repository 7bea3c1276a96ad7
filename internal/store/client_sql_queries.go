// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_store"

// buildUpsertTokenQuery inserts key or overwrites its value.
func buildUpsertTokenQuery(key, value string) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

// buildSelectTokensQuery reads the given keys.
func buildSelectTokensQuery(keys ...string) (string, []any, error) {
	return sq.Select("key", "value").
		From(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

// buildDeleteTokensQuery removes the given keys.
func buildDeleteTokensQuery(keys ...string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}
