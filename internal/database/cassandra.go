package database

import (
	"fmt"
	"log"

	"hotel-rooms-backend/internal/config"

	"github.com/gocql/gocql"
)

// parseConsistency falls back to LOCAL_ONE on an unknown level
func parseConsistency(level string) gocql.Consistency {
	c, err := gocql.ParseConsistencyWrapper(level)
	if err != nil {
		log.Printf("Warning: unknown Cassandra consistency %q, using LOCAL_ONE", level)
		return gocql.LocalOne
	}
	return c
}

func newCluster(cfg config.CassandraConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = parseConsistency(cfg.Consistency)
	cluster.Timeout = cfg.Timeout
	cluster.ConnectTimeout = cfg.Timeout
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.DCAwareRoundRobinPolicy(cfg.LocalDC))
	return cluster
}

// ConnectCassandra opens the status store session
func ConnectCassandra(cfg config.CassandraConfig) (*gocql.Session, error) {
	session, err := newCluster(cfg).CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect cassandra: %w", err)
	}

	var version string
	if err := session.Query("SELECT release_version FROM system.local").Scan(&version); err != nil {
		session.Close()
		return nil, fmt.Errorf("query cassandra version: %w", err)
	}

	log.Printf("Successfully connected to Cassandra %s (keyspace %s)", version, cfg.Keyspace)
	return session, nil
}
