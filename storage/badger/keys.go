package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/finepress/core"
)

// Key prefixes for different data types
const (
	listingPrefix          = "lstrec"
	listingDatePrefix      = "lstrecd"
	listingPublisherPrefix = "lstrecp"
	listingIDSeq           = "lstrecseq"
)

// makeListingKey generates a key for a listing by ID.
func makeListingKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", listingPrefix, id))
}

// makeListingDateKey generates a composite key for the insertion-date index.
// Format: prefix:timestamp:id
func makeListingDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := listingDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialListingDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialListingDateKey(timestamp time.Time) []byte {
	prefix := listingDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeListingPublisherKey generates a composite key for the publisher index.
// Format: prefix:publisher:id
func makeListingPublisherKey(publisher string, id core.ID) []byte {
	prefix := listingPublisherPrefix + ":" + publisher + ":"
	prefixBytes := []byte(prefix)
	totalSize := len(prefixBytes) + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialListingPublisherKey generates a partial key for publisher queries.
// Format: prefix:publisher:
func makePartialListingPublisherKey(publisher string) []byte {
	return []byte(listingPublisherPrefix + ":" + publisher + ":")
}
