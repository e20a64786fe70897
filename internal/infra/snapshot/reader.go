package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	ResourcesFile = "resources.json"
	RequestsFile  = "requests.json"
	BookingsFile  = "bookings.json"
)

var (
	// ErrNotFound в каталоге нет ни одного файла снимка нужного вида
	ErrNotFound = errors.New("snapshot: no snapshot files")

	// ErrDecode файл снимка не разбирается
	ErrDecode = errors.New("snapshot: failed to decode file")
)

type resourcesFile struct {
	Resources []domain.Resource `json:"resources"`
}

type requestsFile struct {
	Requests []domain.Request `json:"requests"`
}

type bookingsFile struct {
	Bookings []domain.Booking `json:"bookings"`
}

// Reader статический снимок данных в каталоге, только чтение
type Reader struct {
	dir string
}

// NewReader создает читатель снимка из каталога dir
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// Resources читает resources.json
func (r *Reader) Resources(ctx context.Context) ([]domain.Resource, error) {
	var file resourcesFile
	found, err := r.decode(ResourcesFile, &file)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ResourcesFile)
	}
	return file.Resources, nil
}

// Requests читает requests.json и дополняет его одобренными записями из bookings.json.
// При совпадении id побеждает запись из requests.json.
func (r *Reader) Requests(ctx context.Context) ([]domain.Request, error) {
	var reqFile requestsFile
	reqFound, err := r.decode(RequestsFile, &reqFile)
	if err != nil {
		return nil, err
	}

	var bookFile bookingsFile
	bookFound, err := r.decode(BookingsFile, &bookFile)
	if err != nil {
		return nil, err
	}

	if !reqFound && !bookFound {
		return nil, fmt.Errorf("%w: %s, %s", ErrNotFound, RequestsFile, BookingsFile)
	}

	result := make([]domain.Request, 0, len(reqFile.Requests)+len(bookFile.Bookings))
	seen := make(map[string]struct{}, cap(result))
	for _, req := range reqFile.Requests {
		if _, dup := seen[req.ID]; dup {
			continue
		}
		seen[req.ID] = struct{}{}
		result = append(result, req)
	}
	for i := range bookFile.Bookings {
		b := &bookFile.Bookings[i]
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}
		result = append(result, b.ToRequest())
	}
	return result, nil
}

func (r *Reader) decode(name string, dst interface{}) (bool, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("snapshot: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	return true, nil
}
