package types

// encrypts data
type Encrypter interface {
	// encrypt arbitrary-length data, padding it to the cipher's block size
	// return ciphertext or nil and error if an error happens
	Encrypt(data []byte) ([]byte, error)
}

// SymmetricKey is a key/IV pair able to produce matching encrypters and decrypters.
type SymmetricKey interface {
	// create a new encryption object using this key and IV
	NewEncrypter() (Encrypter, error)
	// create a new decryption object using this key and IV
	NewDecrypter() (Decrypter, error)
	// length of the key in bytes
	Len() int
}
