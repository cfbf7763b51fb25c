// Package persistence guarda localmente os motivos de recusa de
// contrato. A fonte de verdade é o ERP; este bucket é só um cache que
// sobrevive a quedas da rede no momento da recusa.
package persistence

import (
	"time"

	"go.etcd.io/bbolt"
)

var motivosBucket = []byte("motivos")

type MotivoStore struct {
	db *bbolt.DB
}

func NewMotivoStore(path string) (*MotivoStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(motivosBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &MotivoStore{db: db}, nil
}

// Salvar grava o motivo da recusa, chave = CPF (somente dígitos).
func (s *MotivoStore) Salvar(cpf, motivo string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(motivosBucket).Put([]byte(cpf), []byte(motivo))
	})
}

// Buscar retorna o motivo registrado, ou "" se não houver.
func (s *MotivoStore) Buscar(cpf string) (string, error) {
	var motivo string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(motivosBucket).Get([]byte(cpf)); data != nil {
			motivo = string(data)
		}
		return nil
	})
	return motivo, err
}

func (s *MotivoStore) Close() error {
	return s.db.Close()
}
