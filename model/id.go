package model

import (
	"crypto/rand"
	"hash/fnv"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// IDGenerator produces candidate primary keys for records that have none.
// The model raises a candidate above every numeric key it holds, so a
// generator only needs to be increasing to avoid rewrites.
type IDGenerator interface {
	NextID() int64
}

// SnowflakeGenerator generates time ordered snowflake ids.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates a generator for node, node must be in [0, 1023].
func NewSnowflakeGenerator(node int64) (*SnowflakeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}
	return &SnowflakeGenerator{node: n}, nil
}

// DefaultSnowflakeGenerator creates a generator whose node number is taken
// from the hostname suffix (pod-3 -> 3), a hash of the hostname, or a random
// number.
func DefaultSnowflakeGenerator() (*SnowflakeGenerator, error) {
	return NewSnowflakeGenerator(nodeNumber())
}

// NextID implements IDGenerator.
func (g *SnowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}

func nodeNumber() int64 {
	hostname, err := os.Hostname()
	if err != nil {
		return hostHashNumber("")
	}
	index := strings.LastIndex(hostname, "-")
	if index <= 0 || index == len(hostname)-1 {
		return hostHashNumber(hostname)
	}
	number, err := strconv.Atoi(hostname[index+1:])
	if err != nil || number > 1023 || number < 0 {
		return hostHashNumber(hostname)
	}
	return int64(number)
}

func hostHashNumber(hostname string) int64 {
	if hostname == "" {
		n, err := rand.Int(rand.Reader, big.NewInt(1023))
		if err != nil {
			return 0
		}
		return n.Int64()
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(hostname))
	return int64(h.Sum32() % 1023)
}

// numericKey reports the value of a numeric key rounded down to an int64.
func numericKey(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return clampUint(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return clampUint(n)
	case float32:
		return integralFloat(float64(n))
	case float64:
		return integralFloat(n)
	default:
		return 0, false
	}
}

func clampUint(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(n), true
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Floor(f)
	if f >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	if f <= math.MinInt64 {
		return math.MinInt64, true
	}
	return int64(f), true
}
