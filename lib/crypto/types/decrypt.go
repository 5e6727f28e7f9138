package types

// decrypts data
type Decrypter interface {
	// decrypt a padded, block-aligned ciphertext
	// return plaintext or nil and error if the length or padding is invalid
	Decrypt(data []byte) ([]byte, error)
}
