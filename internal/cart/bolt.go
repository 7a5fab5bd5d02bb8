package cart

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var cartBucket = []byte("carts")

// boltKV implements KV on a bbolt file, giving the cart the durability the
// browser's local storage slot provides.
type boltKV struct {
	db *bolt.DB
}

// NewBoltKV opens (or creates) a bbolt-backed KV at path.
func NewBoltKV(path string) (KV, func() error, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cart database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create cart bucket: %w", err)
	}

	return &boltKV{db: db}, db.Close, nil
}

func (b *boltKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(cartBucket).Get([]byte(key))
		if raw != nil {
			value = make([]byte, len(raw))
			copy(value, raw)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cart slot %s: %w", key, err)
	}
	return value, value != nil, nil
}

func (b *boltKV) Put(key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write cart slot %s: %w", key, err)
	}
	return nil
}

func (b *boltKV) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete cart slot %s: %w", key, err)
	}
	return nil
}
