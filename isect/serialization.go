package isect

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
)

// maxIsects is the largest number of points in the intersection of two
// triangles, reached by a hexagonal coplanar overlap.
const maxIsects = 6

// WriteMeshIsects serializes a list of intersecting triangle pairs in a
// little-endian binary format.
func WriteMeshIsects(w io.Writer, isects []MeshIsect) error {
	if err := writeMeshIsects(w, isects); err != nil {
		return errors.Wrap(err, "write mesh isects")
	}
	return nil
}

func writeMeshIsects(w io.Writer, isects []MeshIsect) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(isects))); err != nil {
		return err
	}
	for _, x := range isects {
		if len(x.Isects) > maxIsects {
			return errors.Errorf("too many intersection points: %d", len(x.Isects))
		}
		if x.I < 0 || x.I >= x.J || uint64(x.J) > math.MaxUint32 {
			return errors.Errorf("invalid triangle pair: %d, %d", x.I, x.J)
		}
		header := []uint32{uint32(x.I), uint32(x.J)}
		if err := binary.Write(w, binary.LittleEndian, header); err != nil {
			return err
		}
		regions := make([]uint8, 1, 1+2*len(x.Isects))
		regions[0] = uint8(len(x.Isects))
		for _, pair := range x.Isects {
			regions = append(regions, uint8(pair.First), uint8(pair.Second))
		}
		if _, err := w.Write(regions); err != nil {
			return err
		}
	}
	return nil
}

// ReadMeshIsects reads the output written by WriteMeshIsects.
func ReadMeshIsects(r io.Reader) ([]MeshIsect, error) {
	res, err := readMeshIsects(r)
	if err != nil {
		return nil, errors.Wrap(err, "read mesh isects")
	}
	return res, nil
}

func readMeshIsects(r io.Reader) ([]MeshIsect, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	// Do not trust the count for allocation.
	res := make([]MeshIsect, 0, essentials.MinInt(int(count), 1024))
	for i := uint32(0); i < count; i++ {
		var header [2]uint32
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			return nil, err
		}
		if header[0] >= header[1] {
			return nil, errors.Errorf("invalid triangle pair: %d, %d", header[0], header[1])
		}
		var num [1]uint8
		if _, err := io.ReadFull(r, num[:]); err != nil {
			return nil, err
		}
		if num[0] > maxIsects {
			return nil, errors.Errorf("too many intersection points: %d", num[0])
		}
		regions := make([]uint8, 2*int(num[0]))
		if _, err := io.ReadFull(r, regions); err != nil {
			return nil, err
		}
		isects := make([]TriangleIsect, num[0])
		for j := range isects {
			first, second := TriangleRegion(regions[2*j]), TriangleRegion(regions[2*j+1])
			if !first.Valid() || !second.Valid() {
				return nil, errors.Errorf("invalid region pair: %d, %d", first, second)
			}
			isects[j] = TriangleIsect{First: first, Second: second}
		}
		res = append(res, MeshIsect{I: int(header[0]), J: int(header[1]), Isects: isects})
	}
	return res, nil
}

// Save writes an object to a file using a serialization function.
func Save[T any](path string, obj T, f func(io.Writer, T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	defer w.Close()
	if err := f(w, obj); err != nil {
		return errors.Wrap(err, "save")
	}
	return errors.Wrap(w.Close(), "save")
}

// Load reads an object from a file using a deserialization function.
func Load[T any](path string, f func(io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer r.Close()
	obj, err := f(r)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	return obj, nil
}
