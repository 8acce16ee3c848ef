// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package store implements a persistent library of netlist source fragments.
package store

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned by Get and Delete when there is no fragment with the
// requested name.
var ErrNotFound = errors.New("fragment not found")

const bucketFragments = "fragments"

// Store is a fragment library backed by a bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the library at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketFragments))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, path)
	}
	return &Store{db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores src under name, replacing any previous fragment.
func (s *Store) Put(name, src string) error {
	if name == "" {
		return errors.New("empty fragment name")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketFragments)).Put([]byte(name), []byte(src))
	})
}

// Get returns the fragment stored under name.
func (s *Store) Get(name string) (string, error) {
	var src string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketFragments)).Get([]byte(name))
		if v == nil {
			return errors.Wrap(ErrNotFound, name)
		}
		src = string(v)
		return nil
	})
	return src, err
}

// Names returns the names of all stored fragments in bytewise order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketFragments)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Delete removes the fragment stored under name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketFragments))
		if b.Get([]byte(name)) == nil {
			return errors.Wrap(ErrNotFound, name)
		}
		return b.Delete([]byte(name))
	})
}
