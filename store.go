package main

import (
	"bytes"
	"encoding/binary"
	"flag"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var (
	dbpath = flag.String("db", "learngl.db", "state db file name, empty disables persistence")
)

var (
	lessonBucket = []byte("lesson")
	windowBucket = []byte("window")

	lastLessonKey = []byte("last")
	geometryKey   = []byte("geometry")
)

// WindowState is the window geometry restored on the next start.
type WindowState struct {
	X, Y          int32
	Width, Height int32
}

func (s WindowState) valid() bool {
	return s.Width > 0 && s.Height > 0
}

type Store struct {
	db *bolt.DB
}

func NewStore(p string) (*Store, error) {
	db, err := bolt.Open(p, 0666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open store %q", p)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(lessonBucket)
		if err != nil {
			return err
		}
		_, err = tx.CreateBucketIfNotExists(windowBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	// commits happen on the render thread; Close syncs once
	db.NoSync = true
	return &Store{
		db: db,
	}, nil
}

func (s *Store) UpdateLesson(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(lessonBucket).Put(lastLessonKey, []byte(name))
	})
}

// Lesson returns the last lesson shown, or "" if none was recorded.
func (s *Store) Lesson() string {
	var name string
	s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(lessonBucket).Get(lastLessonKey)
		if v != nil {
			name = string(v)
		}
		return nil
	})
	return name
}

func (s *Store) UpdateWindowState(state WindowState) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		buf := new(bytes.Buffer)
		if err := binary.Write(buf, binary.LittleEndian, &state); err != nil {
			return err
		}
		return tx.Bucket(windowBucket).Put(geometryKey, buf.Bytes())
	})
}

func (s *Store) GetWindowState() (WindowState, bool) {
	var (
		state WindowState
		ok    bool
	)
	s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(windowBucket).Get(geometryKey)
		if value == nil {
			return nil
		}
		err := binary.Read(bytes.NewReader(value), binary.LittleEndian, &state)
		ok = err == nil && state.valid()
		return nil
	})
	if !ok {
		return WindowState{}, false
	}
	return state, true
}

func (s *Store) Close() error {
	if err := s.db.Sync(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
