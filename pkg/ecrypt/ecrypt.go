// Package ecrypt инкапсулирует криптографический примитив шлюза e-collection.
//
// Банковская библиотека закрыта и поставляется отдельно, поэтому рабочий контракт
// описан интерфейсом Cipher: ParseData(HashData(p)) == p для любого payload, а
// подмена токена или ключей приводит к ошибке проверки. GCMCipher — совместимая
// по контракту реализация на AES-GCM, используемая вне продакшн-контура банка.
package ecrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Cipher пара операций шифрования/подписи данных шлюза.
type Cipher interface {
	// HashData шифрует и подписывает payload общим секретом клиента.
	HashData(payload, clientID, clientKey string) (string, error)
	// ParseData расшифровывает токен и проверяет подпись. При подмене токена
	// или неверных ключах возвращает ErrDecrypt.
	ParseData(token, clientID, clientKey string) (string, error)
}

var ErrDecrypt = errors.New("[ecrypt] token verification failed")

type GCMCipher struct{}

func New() GCMCipher {
	return GCMCipher{}
}

func (GCMCipher) HashData(payload, clientID, clientKey string) (string, error) {
	gcm, gcmErr := newGCM(clientID, clientKey)
	if gcmErr != nil {
		return "", gcmErr
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %s", err.Error())
	}

	// clientID участвует как AAD: токен, выписанный для одного клиента,
	// не пройдет проверку у другого даже при совпадении ключей.
	sealed := gcm.Seal(nonce, nonce, []byte(payload), []byte(clientID))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (GCMCipher) ParseData(token, clientID, clientKey string) (string, error) {
	gcm, gcmErr := newGCM(clientID, clientKey)
	if gcmErr != nil {
		return "", gcmErr
	}

	sealed, decodeErr := base64.RawURLEncoding.DecodeString(token)
	if decodeErr != nil || len(sealed) < gcm.NonceSize() {
		return "", ErrDecrypt
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	payload, openErr := gcm.Open(nil, nonce, ciphertext, []byte(clientID))
	if openErr != nil {
		return "", ErrDecrypt
	}
	return string(payload), nil
}

func newGCM(clientID, clientKey string) (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(clientID + ":" + clientKey))

	block, blockErr := aes.NewCipher(key[:])
	if blockErr != nil {
		return nil, fmt.Errorf("init cipher: %s", blockErr.Error())
	}
	gcm, gcmErr := cipher.NewGCM(block)
	if gcmErr != nil {
		return nil, fmt.Errorf("init gcm: %s", gcmErr.Error())
	}
	return gcm, nil
}
