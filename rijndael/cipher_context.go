package rijndael

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// streamBatchSize сколько байт читается за раз при потоковой обработке; кратно BlockSize
const streamBatchSize = 4096 * BlockSize

// CipherContext режет данные на блоки, добавляет и снимает набивку и
// прогоняет блоки через шифр. Блоки независимы (ECB), поэтому обрабатываются
// пулом воркеров, а результат пишется на исходные позиции.
type CipherContext struct {
	cipher   ISymmetricCipher
	workers  int
	progress func(processed int64)
}

func NewCipherContext(cipher ISymmetricCipher, key Key, workers int) (*CipherContext, error) {
	if cipher == nil {
		return nil, errors.New("cipher implementation cannot be nil")
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cc := &CipherContext{
		cipher:  cipher,
		workers: workers,
	}

	if err := cc.SetKey(key); err != nil {
		return nil, errors.WrapPrefix(err, "failed to set key", 0)
	}

	return cc, nil
}

func (cc *CipherContext) SetKey(key Key) error {
	return cc.cipher.SetKey(key)
}

// SetProgress задает функцию, которая получает число обработанных байт входа после каждой порции
func (cc *CipherContext) SetProgress(progress func(processed int64)) {
	cc.progress = progress
}

// Workers возвращает размер пула потоков
func (cc *CipherContext) Workers() int {
	return cc.workers
}

func applyPadding(data []byte) []byte {
	paddingLength := BlockSize - len(data)%BlockSize

	padded := make([]byte, len(data)+paddingLength)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(paddingLength)
	}

	return padded
}

func removePadding(data []byte) ([]byte, error) {
	if len(data) < BlockSize {
		return nil, newCipherError(InvalidInputLength, "decrypted data is shorter than one block")
	}

	paddingLength := int(data[len(data)-1])
	if paddingLength < 1 || paddingLength > BlockSize {
		return nil, newCipherError(InvalidPaddingLength, "padding length %d is out of range [1, %d]", paddingLength, BlockSize)
	}

	for i := len(data) - paddingLength; i < len(data); i++ {
		if data[i] != byte(paddingLength) {
			return nil, newCipherError(InvalidPaddingBytes, "padding byte at offset %d is 0x%02x, expected 0x%02x", i, data[i], paddingLength)
		}
	}

	return data[:len(data)-paddingLength], nil
}

func checkCiphertextLength(length int64) error {
	if length <= 0 || length%BlockSize != 0 {
		return newCipherError(InvalidInputLength, "ciphertext length %d is not a positive multiple of %d", length, BlockSize)
	}
	return nil
}

// transformBlocks обрабатывает src поблочно и пишет результат в dst на те же позиции
func (cc *CipherContext) transformBlocks(ctx context.Context, dst, src []byte, transform func(Block) (Block, error)) error {
	numBlocks := len(src) / BlockSize
	if numBlocks == 0 {
		return nil
	}

	numThreads := cc.workers
	if numThreads > numBlocks {
		numThreads = numBlocks
	}
	blocksPerThread := (numBlocks + numThreads - 1) / numThreads

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(numThreads)

	for _, chunk := range lo.Chunk(lo.Range(numBlocks), blocksPerThread) {
		group.Go(func() error {
			for _, i := range chunk {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				var block Block
				copy(block[:], src[i*BlockSize:(i+1)*BlockSize])

				result, err := transform(block)
				if err != nil {
					return errors.WrapPrefix(err, fmt.Sprintf("block %d", i), 0)
				}

				copy(dst[i*BlockSize:], result[:])
			}
			return nil
		})
	}

	return group.Wait()
}

func (cc *CipherContext) Encrypt(plaintext []byte) ([]byte, error) {
	padded := applyPadding(plaintext)
	ciphertext := make([]byte, len(padded))

	if err := cc.transformBlocks(context.Background(), ciphertext, padded, cc.cipher.EncryptBlock); err != nil {
		return nil, err
	}

	return ciphertext, nil
}

func (cc *CipherContext) Decrypt(ciphertext []byte) ([]byte, error) {
	if err := checkCiphertextLength(int64(len(ciphertext))); err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	if err := cc.transformBlocks(context.Background(), plaintext, ciphertext, cc.cipher.DecryptBlock); err != nil {
		return nil, err
	}

	return removePadding(plaintext)
}

// readBatch заполняет buf целиком, если это возможно, и сообщает, была ли это последняя порция
func readBatch(r *bufio.Reader, buf []byte) (int, bool, error) {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return n, true, nil
	case err != nil:
		return n, false, err
	}

	if _, err := r.Peek(1); err == io.EOF {
		return n, true, nil
	} else if err != nil {
		return n, false, err
	}

	return n, false, nil
}

func (cc *CipherContext) reportProgress(processed int64) {
	if cc.progress != nil {
		cc.progress(processed)
	}
}

// EncryptReader шифрует поток r в w. Отмена ctx проверяется только между целыми блоками.
func (cc *CipherContext) EncryptReader(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	reader := bufio.NewReaderSize(r, streamBatchSize)
	buf := make([]byte, streamBatchSize)

	var read, written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, last, err := readBatch(reader, buf)
		if err != nil {
			return written, errors.Wrap(err, 0)
		}
		read += int64(n)

		chunk := buf[:n]
		if last {
			chunk = applyPadding(chunk)
		}

		out := make([]byte, len(chunk))
		if err := cc.transformBlocks(ctx, out, chunk, cc.cipher.EncryptBlock); err != nil {
			return written, err
		}

		m, err := w.Write(out)
		written += int64(m)
		if err != nil {
			return written, errors.Wrap(err, 0)
		}
		cc.reportProgress(read)

		if last {
			return written, nil
		}
	}
}

// DecryptReader расшифровывает поток r в w и снимает набивку с последнего блока
func (cc *CipherContext) DecryptReader(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	reader := bufio.NewReaderSize(r, streamBatchSize)
	buf := make([]byte, streamBatchSize)

	var read, written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, last, err := readBatch(reader, buf)
		if err != nil {
			return written, errors.Wrap(err, 0)
		}
		read += int64(n)

		if last {
			if err := checkCiphertextLength(read); err != nil {
				return written, err
			}
		}

		out := make([]byte, n)
		if err := cc.transformBlocks(ctx, out, buf[:n], cc.cipher.DecryptBlock); err != nil {
			return written, err
		}

		if last {
			if out, err = removePadding(out); err != nil {
				return written, err
			}
		}

		m, err := w.Write(out)
		written += int64(m)
		if err != nil {
			return written, errors.Wrap(err, 0)
		}
		cc.reportProgress(read)

		if last {
			return written, nil
		}
	}
}

func (cc *CipherContext) EncryptFile(ctx context.Context, inputPath string, outputPath string) error {
	return cc.processFile(ctx, inputPath, outputPath, cc.EncryptReader)
}

func (cc *CipherContext) DecryptFile(ctx context.Context, inputPath string, outputPath string) error {
	return cc.processFile(ctx, inputPath, outputPath, cc.DecryptReader)
}

// processFile пишет результат во временный файл рядом с outputPath и переименовывает
// его только после успеха: при ошибке outputPath не меняется, а совпадающие пути
// не затирают вход до того, как он прочитан.
func (cc *CipherContext) processFile(
	ctx context.Context,
	inputPath string,
	outputPath string,
	process func(context.Context, io.Reader, io.Writer) (int64, error),
) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return errors.WrapPrefix(err, "failed to open input file", 0)
	}
	defer in.Close()

	out, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return errors.WrapPrefix(err, "failed to create output file", 0)
	}
	tmpPath := out.Name()

	fail := func(err error) error {
		out.Close()
		os.Remove(tmpPath)
		return err
	}

	writer := bufio.NewWriterSize(out, streamBatchSize)
	if _, err := process(ctx, in, writer); err != nil {
		return fail(err)
	}

	if err := writer.Flush(); err != nil {
		return fail(errors.WrapPrefix(err, "failed to write output file", 0))
	}

	if err := out.Chmod(0o644); err != nil {
		return fail(errors.WrapPrefix(err, "failed to write output file", 0))
	}

	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.WrapPrefix(err, "failed to write output file", 0)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return errors.WrapPrefix(err, "failed to replace output file", 0)
	}

	return nil
}

// EncryptStream шифрует data ключом key вариантом S-бокса. Длина результата
// всегда кратна 16 и больше длины входа хотя бы на один байт набивки.
func EncryptStream(data []byte, key Key) []byte {
	return lo.Must(newStreamContext(key).Encrypt(data))
}

// DecryptStream обращает EncryptStream
func DecryptStream(data []byte, key Key) ([]byte, error) {
	return newStreamContext(key).Decrypt(data)
}

func newStreamContext(key Key) *CipherContext {
	cipher := lo.Must(NewRijndaelCipher(VariantRijndael))
	return lo.Must(NewCipherContext(cipher, key, 1))
}
