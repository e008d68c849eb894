// Package snapshot persists whole relations: one opaque snapshot per
// relation, keyed by name, under a fixed directory and filename
// suffix. A snapshot captures the schema, the key spec and every
// tuple; the index is not persisted, it is rebuilt by replaying
// inserts on load. No cross-version byte-format compatibility is
// guaranteed.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"relalg/pkg/index"
	"relalg/pkg/logging"
	"relalg/pkg/relation"
	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

const (
	// DefaultDir is the relative directory snapshots are stored under.
	DefaultDir = "store"
	// Ext is the snapshot filename suffix.
	Ext = ".dbf"

	magic   = "RDBF"
	version = 1
)

// Store reads and writes relation snapshots under one directory.
type Store struct {
	dir string
}

// NewStore creates a snapshot store. An empty dir selects DefaultDir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// Path returns the snapshot filename for a relation name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Ext)
}

// Save writes a snapshot of the relation, keyed by its name. The write
// goes to a temporary file first and is renamed into place, so a
// failed save leaves any prior snapshot untouched.
func (s *Store) Save(r *relation.Relation) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "save %s", r.Name())
	}

	tmp, err := os.CreateTemp(s.dir, r.Name()+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "save %s", r.Name())
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := writeSnapshot(w, r); err != nil {
		return errors.Wrapf(err, "save %s", r.Name())
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "save %s", r.Name())
	}
	if err := tmp.Close(); err != nil {
		tmp = nil
		return errors.Wrapf(err, "save %s", r.Name())
	}

	tmpName := tmp.Name()
	tmp = nil
	if err := os.Rename(tmpName, s.Path(r.Name())); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "save %s", r.Name())
	}

	logging.Get().Debug("snapshot saved", "relation", r.Name(), "path", s.Path(r.Name()))
	return nil
}

// Load reconstructs a relation from its snapshot. The index strategy
// is chosen by the caller and rebuilt by replaying the inserts. A read
// failure yields no usable relation.
func (s *Store) Load(name string, kind index.Kind) (*relation.Relation, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}
	defer f.Close()

	r, err := readSnapshot(bufio.NewReader(f), kind)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}

	logging.Get().Debug("snapshot loaded", "relation", r.Name(), "tuples", r.Len())
	return r, nil
}

func writeSnapshot(w io.Writer, r *relation.Relation) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{version}); err != nil {
		return err
	}
	if err := writeString(w, r.Name()); err != nil {
		return err
	}

	td := r.Schema()
	if err := writeUint32(w, uint32(td.NumFields())); err != nil {
		return err
	}
	for i := 0; i < td.NumFields(); i++ {
		name, _ := td.GetFieldName(i)
		if err := writeString(w, name); err != nil {
			return err
		}
		colType, _ := td.TypeAtIndex(i)
		if err := writeUint32(w, uint32(colType)); err != nil {
			return err
		}
	}

	key := r.Key()
	if err := writeUint32(w, uint32(len(key))); err != nil {
		return err
	}
	for _, k := range key {
		if err := writeString(w, k); err != nil {
			return err
		}
	}

	tuples := r.Tuples()
	if err := writeUint32(w, uint32(len(tuples))); err != nil {
		return err
	}
	for _, t := range tuples {
		for i := 0; i < td.NumFields(); i++ {
			field, err := t.GetField(i)
			if err != nil {
				return err
			}
			if err := field.Serialize(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func readSnapshot(r io.Reader, kind index.Kind) (*relation.Relation, error) {
	header := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if string(header[:len(magic)]) != magic {
		return nil, errors.New("not a relation snapshot")
	}
	if header[len(magic)] != version {
		return nil, errors.Newf("unsupported snapshot version %d", header[len(magic)])
	}

	name, err := readString(r)
	if err != nil {
		return nil, err
	}

	numCols, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	colTypes := make([]types.Type, numCols)
	colNames := make([]string, numCols)
	for i := range colNames {
		if colNames[i], err = readString(r); err != nil {
			return nil, err
		}
		tag, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		colTypes[i] = types.Type(tag)
	}

	numKeys, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	key := make([]string, numKeys)
	for i := range key {
		if key[i], err = readString(r); err != nil {
			return nil, err
		}
	}

	td, err := tuple.NewTupleDesc(colTypes, colNames)
	if err != nil {
		return nil, err
	}
	rel, err := relation.New(name, td, key, kind)
	if err != nil {
		return nil, err
	}

	numTuples, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	for n := uint32(0); n < numTuples; n++ {
		t := tuple.NewTuple(td)
		for i := 0; i < td.NumFields(); i++ {
			field, err := types.ParseField(r, colTypes[i])
			if err != nil {
				return nil, err
			}
			if err := t.SetField(i, field); err != nil {
				return nil, err
			}
		}
		if err := rel.InsertTuple(t); err != nil {
			return nil, err
		}
	}
	return rel, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
