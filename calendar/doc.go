// Package calendar contains the date arithmetic behind the picker.
//
// Allowed here:
// - calendar system implementations (Jalali, Gregorian) and conversions
// - month grid construction, grid caching, holiday tables
//
// Not allowed here:
// - picker state machines (core) or any rendering (screens, widgets)
package calendar
