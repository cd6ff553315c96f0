package goip

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/arlorn/netaddr/address_error"
)

type addressError struct {
	key string // to look up the error message
	str string // an optional string with the address
}

func (a *addressError) Error() string {
	return getStr(a.str) + lookupStr("goip.address.error") + " " + lookupStr(a.key)
}

// GetKey can be used to internationalize error strings in the goip library.
// The list of keys and their English translations are listed in the goipResources.properties file.
// Use your own method to map keys to your translations.
// One such method is golang.org/x/text, which provides language tags
// (https://pkg.go.dev/golang.org/x/text/language?utm_source=godoc#Tag)
// that can then be mapped to catalogs, each catalog being a translation list for the set of keys presented here.
// In the code, you specify the language key to use the right catalog.
// You can use the gotext tool to integrate these translations into your application.
func (a *addressError) GetKey() string {
	return a.key
}

func getStr(str string) (res string) {
	if len(str) > 0 {
		res = str + " "
	}
	return
}

type incompatibleAddressError struct {
	addressError
}

type sizeMismatchError struct {
	incompatibleAddressError
}

type addressValueError struct {
	addressError
	val int
}

type mergedError struct {
	address_error.AddressError
	merged []address_error.AddressError
}

func (a *mergedError) GetMerged() []address_error.AddressError {
	return a.merged
}

// GetAddress_Erroror always returns nil for a merged error: the per-label detail is
// available through GetMerged instead of a single nested error.
func (a *mergedError) GetAddress_Erroror() address_error.AddressError {
	return nil
}

type addressStringError struct {
	addressError
}

// GetIndex returns -1, since a plain addressStringError carries no index; addressStringIndexError overrides this.
func (a *addressStringError) GetIndex() int {
	return -1
}

type addressStringNestedError struct {
	addressStringError
	nested address_error.AddressStringError
}

func (a *addressStringNestedError) Error() string {
	return a.addressError.Error() + ": " + a.nested.Error()
}

// GetNested returns the wrapped error that caused this one.
func (a *addressStringNestedError) GetNested() address_error.AddressStringError {
	return a.nested
}

type addressStringIndexError struct {
	addressStringError
	index int // byte index location in string of the error
}

func (a *addressStringIndexError) Error() string {
	return lookupStr("goip.address.error") + " " + lookupStr(a.key) + " " + strconv.Itoa(a.index)
}

// GetIndex returns the character index location in the string of the error.
func (a *addressStringIndexError) GetIndex() int {
	return a.index
}

type hostNameError struct {
	addressError
}

// GetAddress_Erroror returns the nested address error which is nil for a host name error
func (a *hostNameError) GetAddress_Erroror() address_error.AddressError {
	return nil
}

func (a *hostNameError) Error() string {
	return getStr(a.str) + lookupStr("goip.host.error") + " " + lookupStr(a.key)
}

type hostNameNestedError struct {
	hostNameError
	nested error
}

func (a *hostNameNestedError) Error() string {
	return a.hostNameError.Error() + ": " + a.nested.Error()
}

// GetNested returns the wrapped error that caused this one.
func (a *hostNameNestedError) GetNested() error {
	return a.nested
}

type hostNameIndexError struct {
	hostNameError
	index int
}

func (a *hostNameIndexError) Error() string {
	return getStr(a.str) + lookupStr("goip.host.error") + " " + lookupStr(a.key) + " " + strconv.Itoa(a.index)
}

type hostAddressNestedError struct {
	hostNameIndexError
	nested address_error.AddressError
}

// GetAddress_Erroror returns the nested address error
func (a *hostAddressNestedError) GetAddress_Erroror() address_error.AddressError {
	return a.nested
}

// GetNested returns the wrapped error that caused this one.
func (a *hostAddressNestedError) GetNested() error {
	return a.nested
}

func (a *hostAddressNestedError) Error() string {
	if a.hostNameIndexError.key != "" {
		return getStr(a.str) + lookupStr("goip.host.error") + " " + a.hostNameIndexError.Error() + " " + a.nested.Error()
	}
	return getStr(a.str) + lookupStr("goip.host.error") + " " + a.nested.Error()
}

type wrappedErr struct {
	cause error // root cause
	err   error // wrapper
	str   string
}

func (wrappedErr *wrappedErr) Error() string {
	str := wrappedErr.str
	if len(str) > 0 {
		return str
	}

	str = wrappedErr.err.Error() + ": " + wrappedErr.cause.Error()
	wrappedErr.str = str

	return str
}

type mergedErr struct {
	mergedErrs []error
	str        string
}

func (merged *mergedErr) Error() (str string) {
	str = merged.str
	if len(str) > 0 {
		return
	}

	mergedErrs := merged.mergedErrs
	errLen := len(mergedErrs)
	strs := make([]string, errLen)
	totalLen := 0

	for i, err := range mergedErrs {
		str := err.Error()
		strs[i] = str
		totalLen += len(str)
	}

	format := strings.Builder{}
	format.Grow(totalLen + errLen*2)
	format.WriteString(strs[0])

	for _, str := range strs[1:] {
		format.WriteString(", ")
		format.WriteString(str)
	}

	str = format.String()
	merged.str = str
	return
}

func newError(str string) error {
	return errors.New(str)
}

// errorF returns a formatted error
func errorF(format string, a ...interface{}) error {
	return errors.New(fmt.Sprintf(format, a...))
}

func wrapper(nilIfFirstNil bool, err error, format string, a ...interface{}) error {
	if err == nil {
		if nilIfFirstNil {
			return nil
		}
		return errorF(format, a...)
	}
	return &wrappedErr{
		cause: err,
		err:   errorF(format, a...),
	}
}

// wrapErrf wraps the given error, but only if it is not nil.
func wrapErrf(err error, format string, a ...interface{}) error {
	return wrapper(true, err, format, a...)
}

// wrapToErrf is like wrapErrf but always returns an error
func wrapToErrf(err error, format string, a ...interface{}) error {
	return wrapper(false, err, format, a...)
}

// mergeErrs merges an existing error with a new one
func mergeErrs(err error, format string, a ...interface{}) error {
	newErr := errorF(format, a...)

	if err == nil {
		return newErr
	}

	var merged []error

	if merge, isMergedErr := err.(*mergedErr); isMergedErr {
		merged = append(append([]error(nil), merge.mergedErrs...), newErr)
	} else {
		merged = []error{err, newErr}
	}

	return &mergedErr{mergedErrs: merged}
}

// mergeErrors merges multiple errors
func mergeAllErrs(errs ...error) error {
	var all []error
	allLen := len(errs)
	if allLen <= 1 {
		if allLen == 0 {
			return nil
		}
		return errs[0]
	}

	for _, err := range errs {
		if err != nil {
			if merge, isMergedErr := err.(*mergedErr); isMergedErr {
				all = append(all, merge.mergedErrs...)
			} else {
				all = append(all, err)
			}
		}
	}

	allLen = len(all)
	if allLen <= 1 {
		if allLen == 0 {
			return nil
		}
		return all[0]
	}

	return &mergedErr{mergedErrs: all}
}

// newAddressStringIndexError creates an AddressStringError for the given resource key and byte index.
func newAddressStringIndexError(str, key string, index int) address_error.AddressStringError {
	return &addressStringIndexError{
		addressStringError: addressStringError{addressError{key: key, str: str}},
		index:               index,
	}
}

// newAddressStringError creates an AddressStringError for the given resource key, with no byte index.
func newAddressStringError(str, key string) address_error.AddressStringError {
	return &addressStringError{addressError{key: key, str: str}}
}

// newAddressStringNestedError wraps a nested AddressStringError, used for recursive parses
// such as an embedded IPv4 tail or a mask parsed from a qualifier.
func newAddressStringNestedError(str, key string, nested address_error.AddressStringError) address_error.AddressStringError {
	return &addressStringNestedError{
		addressStringError: addressStringError{addressError{key: key, str: str}},
		nested:             nested,
	}
}

// newHostNameIndexError creates a HostNameError for the given resource key and byte index.
func newHostNameIndexError(str, key string, index int) address_error.HostNameError {
	return &hostNameIndexError{
		hostNameError: hostNameError{addressError{key: key, str: str}},
		index:         index,
	}
}

// newHostNameError creates a HostNameError for the given resource key, with no byte index.
func newHostNameError(str, key string) address_error.HostNameError {
	return &hostNameError{addressError{key: key, str: str}}
}

// newHostAddressNestedError wraps a nested AddressError encountered while parsing the address portion of a host string.
func newHostAddressNestedError(str, key string, index int, nested address_error.AddressError) address_error.HostNameError {
	return &hostAddressNestedError{
		hostNameIndexError: hostNameIndexError{
			hostNameError: hostNameError{addressError{key: key, str: str}},
			index:         index,
		},
		nested: nested,
	}
}

// mergeAddressErrs merges zero or more AddressErrors into a single MergedError using go.uber.org/multierr
// for the underlying message aggregation, matching the shape of mergedError/GetMerged above.
// Returns nil if errs is empty, and the single error itself (not wrapped) if only one is given.
func mergeAddressErrs(errs ...address_error.AddressError) address_error.AddressError {
	var nonNil []address_error.AddressError
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	}
	combined := make([]error, 0, len(nonNil))
	for _, err := range nonNil {
		combined = append(combined, err)
	}
	return &mergedError{
		AddressError: &addressStringError{addressError{key: nonNil[0].GetKey(), str: multierr.Combine(combined...).Error()}},
		merged:       nonNil,
	}
}

// mergeHostNameErrs merges zero or more HostNameErrors into a single HostNameError that is
// also a MergedError, used by validateHostNameLabels to report every invalid DNS label in a
// host string rather than stopping at the first one found.
func mergeHostNameErrs(errs ...address_error.HostNameError) address_error.HostNameError {
	addrErrs := make([]address_error.AddressError, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			addrErrs = append(addrErrs, err)
		}
	}
	merged := mergeAddressErrs(addrErrs...)
	if merged == nil {
		return nil
	}
	return merged.(address_error.HostNameError)
}
