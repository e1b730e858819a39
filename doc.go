// Package keycheck verifies the contents of a Redis (or Valkey) keyspace
// against expected values, for use in integration test suites and smoke
// checks. It compares under per-kind rules: loose scalar equality for
// strings and hash fields, strict ordered equality for lists,
// order-insensitive equality for sets, and float-compared scores for
// sorted sets.
//
//	client, _ := keycheck.New(keycheck.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	rep, _ := client.Exists(ctx, "users:count", 42)
//	if !rep.Passed {
//	    log.Fatalf("expected %s, got %s", rep.Expected, rep.Actual)
//	}
//
//	ok, _ := client.Contains(ctx, "leaderboard", "alice", 1500)
//
// Expectations are loosely typed: strings, numbers and booleans at the top
// level, or one level of []any / map[string]any. Booleans coerce to the
// "1"/"0" strings the store actually holds.
package keycheck
