package rijndael

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toBlock(t *testing.T, s string) Block {
	t.Helper()
	var block Block
	require.Equal(t, BlockSize, copy(block[:], mustHex(t, s)))
	return block
}

func TestEncryptBlockKnownAnswer(t *testing.T) {
	type scenario struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
	}

	scenarios := []scenario{
		{
			name:       "FIPS-197 C.1",
			key:        "000102030405060708090a0b0c0d0e0f",
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:       "FIPS-197 B",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext:  "3243f6a8885a308d313198a2e0370734",
			ciphertext: "3925841d02dc09fbdc118597196a0b32",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			table := ExpandKey(mustKey(t, s.key))
			plain := toBlock(t, s.plaintext)

			encrypted := EncryptBlock(plain, table)
			assert.Equal(t, s.ciphertext, hex.EncodeToString(encrypted[:]))
			assert.Equal(t, plain, DecryptBlock(encrypted, table))

			cipher, err := NewRijndaelCipher(VariantRijndael)
			require.NoError(t, err)
			require.NoError(t, cipher.SetKey(mustKey(t, s.key)))

			viaCipher, err := cipher.EncryptBlock(plain)
			require.NoError(t, err)
			assert.Equal(t, encrypted, viaCipher)
		})
	}
}

func TestRijndaelCipherVariants(t *testing.T) {
	key := NormalizeKey([]byte("thisisaverysecre"))
	plain := Block{'H', 'e', 'l', 'l', 'o', ' ', 'W', 'o', 'r', 'l', 'd', '!', '1', '2', '3', '4'}

	results := map[Variant]Block{}
	for _, variant := range Variants() {
		cipher, err := NewRijndaelCipher(variant)
		require.NoError(t, err)
		require.NoError(t, cipher.SetKey(key))
		assert.Equal(t, variant, cipher.Variant())

		encrypted, err := cipher.EncryptBlock(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, encrypted)

		decrypted, err := cipher.DecryptBlock(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plain, decrypted)

		results[variant] = encrypted
	}

	assert.NotEqual(t, results[VariantRijndael], results[VariantAdditive])
}

func TestRijndaelCipherRejectsUnknownVariant(t *testing.T) {
	_, err := NewRijndaelCipher(Variant("rot13"))
	assert.True(t, HasErrorCode(err, InvalidVariant))
}

func TestRijndaelCipherKeyNotSet(t *testing.T) {
	cipher, err := NewRijndaelCipher(VariantRijndael)
	require.NoError(t, err)

	_, err = cipher.EncryptBlock(Block{})
	assert.True(t, HasErrorCode(err, KeyNotSet))

	_, err = cipher.DecryptBlock(Block{})
	assert.True(t, HasErrorCode(err, KeyNotSet))
}

func TestTracerObservesWithoutChangingOutput(t *testing.T) {
	key := mustKey(t, "000102030405060708090a0b0c0d0e0f")
	plain := toBlock(t, "00112233445566778899aabbccddeeff")

	var mutex sync.Mutex
	var events []TraceEvent
	tracer := func(ev TraceEvent) {
		mutex.Lock()
		defer mutex.Unlock()
		events = append(events, ev)
	}

	cipher, err := NewRijndaelCipher(VariantRijndael, WithTracer(tracer))
	require.NoError(t, err)
	require.NoError(t, cipher.SetKey(key))

	encrypted, err := cipher.EncryptBlock(plain)
	require.NoError(t, err)
	assert.Equal(t, EncryptBlock(plain, ExpandKey(key)), encrypted)

	// начальный AddRoundKey, 9 полных раундов по 4 шага и финальный раунд из 3 шагов
	require.Len(t, events, 1+9*4+3)
	assert.Equal(t, TraceEvent{Direction: Encrypting, Round: 0, Step: StepAddRoundKey, State: State(toBlock(t, "00102030405060708090a0b0c0d0e0f0"))}, events[0])
	assert.Equal(t, StepSubBytes, events[1].Step)
	assert.Equal(t, State(toBlock(t, "63cab7040953d051cd60e0e7ba70e18c")), events[1].State)
	last := events[len(events)-1]
	assert.Equal(t, Rounds, last.Round)
	assert.Equal(t, State(encrypted), last.State)
	for _, ev := range events {
		if ev.Round == Rounds {
			assert.NotEqual(t, StepMixColumns, ev.Step)
		}
	}

	events = nil
	decrypted, err := cipher.DecryptBlock(encrypted)
	require.NoError(t, err)
	assert.Equal(t, plain, decrypted)
	require.Len(t, events, 3+9*4+1)
	assert.Equal(t, Decrypting, events[0].Direction)
	assert.Equal(t, Rounds, events[0].Round)
	assert.Equal(t, State(plain), events[len(events)-1].State)
}

func TestScheduleCacheSharesTables(t *testing.T) {
	cache := NewScheduleCache()
	key := NormalizeKey([]byte("shared"))

	var wg sync.WaitGroup
	tables := make([]*RoundKeyTable, 16)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = cache.Get(key)
		}(i)
	}
	wg.Wait()

	for _, table := range tables {
		assert.Same(t, tables[0], table)
	}
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, *ExpandKey(key), *tables[0])

	cipher, err := NewRijndaelCipher(VariantRijndael, WithScheduleCache(cache))
	require.NoError(t, err)
	require.NoError(t, cipher.SetKey(key))
	assert.Same(t, tables[0], cipher.RoundKeys())

	cache.Forget(key)
	assert.Equal(t, 0, cache.Len())
}
