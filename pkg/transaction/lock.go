package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// HashAlgorithm is the algorithm used to derive a secret from its proof.
type HashAlgorithm uint8

const (
	HashAlgorithmSHA3256 HashAlgorithm = 0
	HashAlgorithmKeccak  HashAlgorithm = 1
	HashAlgorithmHash160 HashAlgorithm = 2
	HashAlgorithmHash256 HashAlgorithm = 3
)

// HashLockBody locks funds as a deposit for the announced aggregate bonded with Hash.
type HashLockBody struct {
	Mosaic   Mosaic `json:"mosaic"`
	Duration uint64 `json:"duration,string"`
	Hash     Hash   `json:"hash"`
}

func (b *HashLockBody) Type() Type { return TypeHashLock }

func (b *HashLockBody) ResolveAliases(r AliasResolver) (Body, error) {
	mosaic, err := resolveMosaic(r, b.Mosaic)
	if err != nil {
		return nil, err
	}
	return &HashLockBody{Mosaic: mosaic, Duration: b.Duration, Hash: b.Hash}, nil
}

func (b *HashLockBody) encode(w *codec.Writer) error {
	writeMosaic(w, b.Mosaic)
	w.WriteUInt64(b.Duration)
	w.WriteBytes(b.Hash[:])
	return nil
}

func (b *HashLockBody) decode(r *codec.Reader) error {
	var err error
	if b.Mosaic, err = readMosaic(r); err != nil {
		return err
	}
	if b.Duration, err = r.ReadUInt64(); err != nil {
		return err
	}
	b.Hash, err = readHash(r)
	return err
}

// SecretLockBody locks funds for Recipient until the proof of Secret is revealed.
type SecretLockBody struct {
	Mosaic        Mosaic            `json:"mosaic"`
	Duration      uint64            `json:"duration,string"`
	HashAlgorithm HashAlgorithm     `json:"hashAlgorithm"`
	Secret        Hash              `json:"secret"`
	Recipient     UnresolvedAddress `json:"recipientAddress"`
}

func (b *SecretLockBody) Type() Type { return TypeSecretLock }

func (b *SecretLockBody) ResolveAliases(r AliasResolver) (Body, error) {
	mosaic, err := resolveMosaic(r, b.Mosaic)
	if err != nil {
		return nil, err
	}
	recipient, err := r.ResolveAddress(b.Recipient)
	if err != nil {
		return nil, err
	}
	return &SecretLockBody{
		Mosaic:        mosaic,
		Duration:      b.Duration,
		HashAlgorithm: b.HashAlgorithm,
		Secret:        b.Secret,
		Recipient:     recipient,
	}, nil
}

func (b *SecretLockBody) encode(w *codec.Writer) error {
	writeMosaic(w, b.Mosaic)
	w.WriteUInt64(b.Duration)
	w.WriteUInt8(uint8(b.HashAlgorithm))
	w.WriteBytes(b.Secret[:])
	w.WriteBytes(b.Recipient[:])
	return nil
}

func (b *SecretLockBody) decode(r *codec.Reader) error {
	var err error
	if b.Mosaic, err = readMosaic(r); err != nil {
		return err
	}
	if b.Duration, err = r.ReadUInt64(); err != nil {
		return err
	}
	algorithm, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.HashAlgorithm = HashAlgorithm(algorithm)
	if b.Secret, err = readHash(r); err != nil {
		return err
	}
	b.Recipient, err = readUnresolvedAddress(r)
	return err
}

// SecretProofBody reveals Proof to unlock the secret lock of Secret.
type SecretProofBody struct {
	HashAlgorithm HashAlgorithm     `json:"hashAlgorithm"`
	Secret        Hash              `json:"secret"`
	Recipient     UnresolvedAddress `json:"recipientAddress"`
	Proof         codec.Hex         `json:"proof"`
}

func (b *SecretProofBody) Type() Type { return TypeSecretProof }

func (b *SecretProofBody) ResolveAliases(r AliasResolver) (Body, error) {
	recipient, err := r.ResolveAddress(b.Recipient)
	if err != nil {
		return nil, err
	}
	return &SecretProofBody{
		HashAlgorithm: b.HashAlgorithm,
		Secret:        b.Secret,
		Recipient:     recipient,
		Proof:         copyBytes(b.Proof),
	}, nil
}

func (b *SecretProofBody) encode(w *codec.Writer) error {
	w.WriteUInt8(uint8(b.HashAlgorithm))
	w.WriteBytes(b.Secret[:])
	w.WriteBytes(b.Recipient[:])
	if err := writeUInt16Count(w, "proof", len(b.Proof)); err != nil {
		return err
	}
	w.WriteBytes(b.Proof)
	return nil
}

func (b *SecretProofBody) decode(r *codec.Reader) error {
	algorithm, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.HashAlgorithm = HashAlgorithm(algorithm)
	if b.Secret, err = readHash(r); err != nil {
		return err
	}
	if b.Recipient, err = readUnresolvedAddress(r); err != nil {
		return err
	}
	proofSize, err := r.ReadUInt16()
	if err != nil {
		return err
	}
	b.Proof, err = r.ReadBytes(int(proofSize))
	return err
}
