package transaction

import (
	"fmt"
	"math"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

func checkCount(field string, count int, max int) error {
	if count > max {
		return fmt.Errorf("%s has %d entries but at most %d are allowed", field, count, max)
	}
	return nil
}

func writeMosaic(w *codec.Writer, mosaic Mosaic) {
	w.WriteUInt64(uint64(mosaic.ID))
	w.WriteUInt64(mosaic.Amount)
}

func readMosaic(r *codec.Reader) (Mosaic, error) {
	id, err := r.ReadUInt64()
	if err != nil {
		return Mosaic{}, err
	}
	amount, err := r.ReadUInt64()
	if err != nil {
		return Mosaic{}, err
	}
	return Mosaic{ID: UnresolvedMosaicID(id), Amount: amount}, nil
}

func readUnresolvedAddress(r *codec.Reader) (UnresolvedAddress, error) {
	address := UnresolvedAddress{}
	err := r.ReadFixed(address[:])
	return address, err
}

func readAddress(r *codec.Reader) (Address, error) {
	address := Address{}
	err := r.ReadFixed(address[:])
	return address, err
}

func readHash(r *codec.Reader) (Hash, error) {
	hash := Hash{}
	err := r.ReadFixed(hash[:])
	return hash, err
}

func readPublicKey(r *codec.Reader) (PublicKey, error) {
	key := PublicKey{}
	err := r.ReadFixed(key[:])
	return key, err
}

func writeUInt16Count(w *codec.Writer, field string, count int) error {
	if err := checkCount(field, count, math.MaxUint16); err != nil {
		return err
	}
	w.WriteUInt16(uint16(count))
	return nil
}

func writeUInt8Count(w *codec.Writer, field string, count int) error {
	if err := checkCount(field, count, math.MaxUint8); err != nil {
		return err
	}
	w.WriteUInt8(uint8(count))
	return nil
}

func resolveMosaic(r AliasResolver, mosaic Mosaic) (Mosaic, error) {
	id, err := r.ResolveMosaicID(mosaic.ID)
	if err != nil {
		return Mosaic{}, err
	}
	return Mosaic{ID: id, Amount: mosaic.Amount}, nil
}

func resolveAddresses(r AliasResolver, addresses []UnresolvedAddress) ([]UnresolvedAddress, error) {
	if addresses == nil {
		return nil, nil
	}
	resolved := make([]UnresolvedAddress, len(addresses))
	for i, address := range addresses {
		res, err := r.ResolveAddress(address)
		if err != nil {
			return nil, err
		}
		resolved[i] = res
	}
	return resolved, nil
}

func resolveMosaicIDs(r AliasResolver, ids []UnresolvedMosaicID) ([]UnresolvedMosaicID, error) {
	if ids == nil {
		return nil, nil
	}
	resolved := make([]UnresolvedMosaicID, len(ids))
	for i, id := range ids {
		res, err := r.ResolveMosaicID(id)
		if err != nil {
			return nil, err
		}
		resolved[i] = res
	}
	return resolved, nil
}
