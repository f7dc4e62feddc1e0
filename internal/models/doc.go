// Package models defines the contact book domain: validated field values, contact records, and the address book collection.
//
// The package contains three layers:
//
// 1. Field values: immutable, validated at construction
//   - [PhoneNumber] : exactly 10 decimal digits
//   - [Birthday] : a calendar date parsed from DD.MM.YYYY
//
// 2. Entities:
//   - [Record] : one contact (name, ordered phones, optional birthday)
//   - [AddressBook] : the keyed collection of all records, upsert by name
//
// 3. Ports:
//   - [BookStore] : load/save of a full address book snapshot
//
// All validation failures are sentinel errors from the shared package
// ([shared.ErrInvalidPhone], [shared.ErrInvalidDate], [shared.ErrPhoneNotFound], ...)
// so callers can translate them with errors.Is.
package models
