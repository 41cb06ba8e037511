package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

const rowPrefix = "rows"

// Open returns a Sheet backed by diskv at basePath. One key per row,
// zero-padded sequence numbers so append order survives the key walk.
func Open(basePath string) (Sheet, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("sheet: base path required")
	}
	return &diskSheet{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

type diskSheet struct {
	d        *diskv.Diskv
	basePath string

	mu      sync.Mutex
	nextSeq int
	scanned bool
}

func (s *diskSheet) Rows(ctx context.Context) ([][]string, error) {
	keys, err := s.sortedKeys(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		val, err := s.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
		}
		var row []string
		if err := json.Unmarshal(val, &row); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			// Keep the position so callers can count the bad row and the
			// header skip stays aligned.
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *diskSheet) Append(ctx context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scanned {
		if err := s.scanSeqLocked(ctx); err != nil {
			return err
		}
	}
	if s.nextSeq == 0 {
		if err := s.writeLocked(0, Header); err != nil {
			return err
		}
		s.nextSeq = 1
	}
	if err := s.writeLocked(s.nextSeq, row); err != nil {
		return err
	}
	s.nextSeq++
	return nil
}

func (s *diskSheet) writeLocked(seq int, row []string) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("sheet: encode row: %w", err)
	}
	key := toKey(seq)
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (s *diskSheet) sortedKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, rowPrefix+"-") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *diskSheet) scanSeqLocked(ctx context.Context) error {
	max := -1
	for key := range s.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		seq, err := strconv.Atoi(pk.FileName)
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	s.nextSeq = max + 1
	s.scanned = true
	return nil
}

func toKey(seq int) string {
	return fmt.Sprintf("%s-%08d", rowPrefix, seq)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
