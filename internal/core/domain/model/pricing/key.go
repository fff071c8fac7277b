package pricing

import (
	"errors"
	"fmt"
	"strings"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
)

// Key identifies a rule.
type Key struct {
	OriginCityID      string
	DestinationCityID string
	ServiceID         string
	Band              kernel.WeightBand
}

func NewKey(origin, destination, service string, band kernel.WeightBand) (Key, error) {
	k := Key{
		OriginCityID:      strings.TrimSpace(origin),
		DestinationCityID: strings.TrimSpace(destination),
		ServiceID:         strings.TrimSpace(service),
		Band:              band,
	}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func (k Key) Validate() error {
	var errList []error
	if k.OriginCityID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("originCityId"))
	}
	if k.DestinationCityID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("destinationCityId"))
	}
	if k.ServiceID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("serviceId"))
	}
	errList = append(errList, k.Band.Validate())
	return errors.Join(errList...)
}

// IsSelfRoute reports origin == destination.
func (k Key) IsSelfRoute() bool {
	return k.OriginCityID == k.DestinationCityID
}

// Mirror swaps origin and destination and keeps service and band.
func (k Key) Mirror() Key {
	return Key{
		OriginCityID:      k.DestinationCityID,
		DestinationCityID: k.OriginCityID,
		ServiceID:         k.ServiceID,
		Band:              k.Band,
	}
}

func (k Key) IsEqual(other Key) bool {
	return k.OriginCityID == other.OriginCityID &&
		k.DestinationCityID == other.DestinationCityID &&
		k.ServiceID == other.ServiceID &&
		k.Band.IsEqual(other.Band)
}

// Less orders keys by origin then destination. Service and band are shared
// within a pair, so this is enough to order a key against its mirror.
func (k Key) Less(other Key) bool {
	if k.OriginCityID != other.OriginCityID {
		return k.OriginCityID < other.OriginCityID
	}
	return k.DestinationCityID < other.DestinationCityID
}

// Pair returns the keys to write for k in canonical order. A self route
// yields k alone.
func (k Key) Pair() []Key {
	if k.IsSelfRoute() {
		return []Key{k}
	}
	mirror := k.Mirror()
	if mirror.Less(k) {
		return []Key{mirror, k}
	}
	return []Key{k, mirror}
}

func (k Key) String() string {
	return fmt.Sprintf("%s->%s/%s%s", k.OriginCityID, k.DestinationCityID, k.ServiceID, k.Band)
}
