// timestamp.go implements plausibility checks for identifier timestamps.
//
// A ULID starts with a 48-bit millisecond timestamp encoded as ten
// Crockford base32 characters. Identifiers are generated by clients, so a
// decodable timestamp is not enough: it must also fall between the epoch and
// a small skew past the reference time. The reference time is a parameter,
// which keeps these functions deterministic and testable.

package validate

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// TimestampLen is the length of the encoded ULID timestamp segment.
const TimestampLen = 10

// zeroEntropy pads a timestamp segment to a full ULID for decoding.
const zeroEntropy = "0000000000000000"

// TimestampComponent validates segment against the default rules.
func TimestampComponent(segment string, now time.Time) (time.Time, error) {
	return defaultRules.TimestampComponent(segment, now)
}

// TimestampComponent decodes a ULID timestamp segment and checks that it is
// plausible relative to now.
//
// Validation rules, checked in order:
//   - Exactly TimestampLen characters
//   - Crockford base32 alphabet only (case-insensitive)
//   - Fits in 48 bits (first character at most '7')
//   - Not before Epoch
//   - Not after now + MaxSkew
//
// Returns the decoded time in UTC on success.
func (r Rules) TimestampComponent(segment string, now time.Time) (time.Time, error) {
	if len(segment) != TimestampLen {
		return time.Time{}, decodeErr(FieldTimestamp, RuleWrongLength, fmt.Sprintf("want %d characters, got %d", TimestampLen, len(segment)))
	}
	id, err := ulid.ParseStrict(segment + zeroEntropy)
	if err != nil {
		return time.Time{}, ulidErr(FieldTimestamp, err)
	}
	return r.checkWindow(FieldTimestamp, ulid.Time(id.Time()), now)
}

// IDTimestamp validates the timestamp embedded in id against the default rules.
func IDTimestamp(id string, now time.Time) (time.Time, error) {
	return defaultRules.IDTimestamp(id, now)
}

// IDTimestamp extracts and validates the creation timestamp of a sortable
// identifier. Accepted forms are a 26-character ULID and a UUIDv7 in any
// textual form uuid.Parse understands. Other UUID versions carry no usable
// creation time and are rejected.
func (r Rules) IDTimestamp(id string, now time.Time) (time.Time, error) {
	if len(id) == ulid.EncodedSize {
		u, err := ulid.ParseStrict(id)
		if err != nil {
			return time.Time{}, ulidErr(FieldID, err)
		}
		return r.checkWindow(FieldID, ulid.Time(u.Time()), now)
	}

	u, err := uuid.Parse(id)
	if err != nil {
		return time.Time{}, decodeErr(FieldID, RuleMalformed, "want ULID or UUIDv7")
	}
	if u.Version() != 7 || u.Variant() != uuid.RFC4122 {
		return time.Time{}, decodeErr(FieldID, RuleUnsupportedVersion, fmt.Sprintf("UUID version %d", u.Version()))
	}
	return r.checkWindow(FieldID, ulid.Time(uuidMillis(u)), now)
}

// uuidMillis returns the 48-bit big-endian millisecond prefix of a UUIDv7.
func uuidMillis(u uuid.UUID) uint64 {
	var b [8]byte
	copy(b[2:], u[:6])
	return binary.BigEndian.Uint64(b[:])
}

func (r Rules) checkWindow(field string, t, now time.Time) (time.Time, error) {
	t = t.UTC()
	if epoch := r.epoch(); t.Before(epoch) {
		return t, &Error{Kind: ErrOutOfRange, Field: field, Rule: RuleBeforeEpoch,
			Detail: fmt.Sprintf("%s is before %s", t.Format(time.RFC3339), epoch.UTC().Format(time.RFC3339))}
	}
	if limit := now.Add(r.maxSkew()); t.After(limit) {
		return t, &Error{Kind: ErrOutOfRange, Field: field, Rule: RuleInFuture,
			Detail: fmt.Sprintf("%s is more than %s ahead", t.Format(time.RFC3339), r.maxSkew())}
	}
	return t, nil
}

// ulidErr maps oklog/ulid parse errors onto the decode taxonomy.
func ulidErr(field string, err error) error {
	switch {
	case errors.Is(err, ulid.ErrDataSize):
		return decodeErr(field, RuleWrongLength, err.Error())
	case errors.Is(err, ulid.ErrOverflow):
		return decodeErr(field, RuleOverflow, "first character must be 0-7")
	case errors.Is(err, ulid.ErrInvalidCharacters):
		return decodeErr(field, RuleIllegalChar, "not Crockford base32")
	default:
		return decodeErr(field, RuleMalformed, strings.TrimPrefix(err.Error(), "ulid: "))
	}
}
