package db

import "errors"

// ErrKeyNotFound signals a read against a key that does not exist.
var ErrKeyNotFound = errors.New("db: key not found")

// Op constants map to Redis command names for error context.
const (
	OpType      = "TYPE"
	OpGet       = "GET"
	OpLRange    = "LRANGE"
	OpSMembers  = "SMEMBERS"
	OpZRange    = "ZRANGE"
	OpHGetAll   = "HGETALL"
	OpHGet      = "HGET"
	OpSIsMember = "SISMEMBER"
	OpZScore    = "ZSCORE"
	OpSet       = "SET"
	OpAppend    = "APPEND"
	OpRPush     = "RPUSH"
	OpSAdd      = "SADD"
	OpZAdd      = "ZADD"
	OpHSet      = "HSET"
	OpDel       = "DEL"
	OpFlushDB   = "FLUSHDB"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
