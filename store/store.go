package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/segmentation"
)

// Store persists point clouds and extracted clusters in SQLite. Clusters
// are keyed by the provenance tag of the cloud they were extracted from,
// so one saved cloud owns one saved cluster set at a time.
type Store struct {
	db *sql.DB
}

// New creates a Store over the provided database and ensures the schema
// exists.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SaveCloud inserts or replaces the cloud row identified by its tag ID.
func (s *Store) SaveCloud(ctx context.Context, c *cloud.PointCloud) error {
	if c == nil {
		return fmt.Errorf("store: cloud is nil")
	}
	tag := c.Tag()
	if tag.ID == "" {
		return fmt.Errorf("store: cloud tag ID must be set")
	}
	pts, err := EncodePoints(c.Points())
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO clouds(id, name, created_at, points) VALUES(?, ?, ?, ?)`,
		tag.ID, tag.Name, tag.CreatedAt.UTC().Format(time.RFC3339Nano), pts)
	return err
}

// LoadCloud reconstructs a saved cloud, tag included.
func (s *Store) LoadCloud(ctx context.Context, id string) (*cloud.PointCloud, error) {
	tag, pts, err := s.loadCloudRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return cloud.FromPoints(tag, pts)
}

func (s *Store) loadCloudRow(ctx context.Context, id string) (cloud.Tag, []float32, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, points FROM clouds WHERE id = ?`, id)
	var tag cloud.Tag
	var created string
	var blob []byte
	if err := row.Scan(&tag.ID, &tag.Name, &created, &blob); err != nil {
		if err == sql.ErrNoRows {
			return cloud.Tag{}, nil, fmt.Errorf("store: cloud %q not found", id)
		}
		return cloud.Tag{}, nil, err
	}
	if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
		tag.CreatedAt = ts
	}
	pts, err := DecodePoints(blob)
	if err != nil {
		return cloud.Tag{}, nil, err
	}
	return tag, pts, nil
}

// SaveClusters replaces the stored cluster set of each origin cloud
// appearing in clusters, preserving emission (seed) order through seq.
// All clusters must carry an origin tag ID.
func (s *Store) SaveClusters(ctx context.Context, clusters []segmentation.Cluster) error {
	if len(clusters) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	seq := make(map[string]int)
	for _, cl := range clusters {
		if cl.Origin.ID == "" {
			return fmt.Errorf("store: cluster has no origin tag ID")
		}
		if _, seen := seq[cl.Origin.ID]; !seen {
			if _, err := tx.ExecContext(ctx, `DELETE FROM clusters WHERE cloud_id = ?`, cl.Origin.ID); err != nil {
				return err
			}
		}
		blob, err := EncodeIndices(cl.Indices)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO clusters(cloud_id, seq, indices) VALUES(?, ?, ?)`,
			cl.Origin.ID, seq[cl.Origin.ID], blob); err != nil {
			return err
		}
		seq[cl.Origin.ID]++
	}
	return tx.Commit()
}

// LoadClusters returns the stored cluster set of a cloud in emission
// order, with origin tags restored from the clouds table.
func (s *Store) LoadClusters(ctx context.Context, cloudID string) ([]segmentation.Cluster, error) {
	tag, _, err := s.loadCloudRow(ctx, cloudID)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT indices FROM clusters WHERE cloud_id = ? ORDER BY seq`, cloudID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []segmentation.Cluster
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		ids, err := DecodeIndices(blob)
		if err != nil {
			return nil, err
		}
		out = append(out, segmentation.Cluster{Indices: ids, Origin: tag})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveCloud deletes a cloud and its cluster set.
func (s *Store) RemoveCloud(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: RemoveCloud called with empty id")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM clusters WHERE cloud_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM clouds WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
