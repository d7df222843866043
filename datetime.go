// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import (
	"fmt"
	"time"
)

// Time is a time of day with whole-second precision.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// NewTime validates hour, minute and second against the clock domain.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("invalid time: hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("invalid time: minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return Time{}, fmt.Errorf("invalid time: second %d out of range", second)
	}
	return Time{Hour: hour, Minute: minute, Second: second}, nil
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Date is a calendar date.  Values constructed through NewDate always
// denote a day that exists on the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate validates year, month and day, including month lengths and leap
// years: the day must actually exist in that month of that year.
func NewDate(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, fmt.Errorf("invalid date: year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid date: month %d out of range", month)
	}
	norm := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if norm.Year() != year || int(norm.Month()) != month || norm.Day() != day {
		return Date{}, fmt.Errorf("invalid date: %04d-%02d-%02d does not exist", year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Timestamp is a calendar date and a time of day, always UTC.
type Timestamp struct {
	Date Date
	Time Time
}

// NewTimestamp combines a validated date and a validated time.
func NewTimestamp(year, month, day, hour, minute, second int) (Timestamp, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Timestamp{}, err
	}
	t, err := NewTime(hour, minute, second)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Date: d, Time: t}, nil
}

// UTC converts the timestamp to a time.Time in UTC.
func (ts Timestamp) UTC() time.Time {
	return time.Date(ts.Date.Year, time.Month(ts.Date.Month), ts.Date.Day,
		ts.Time.Hour, ts.Time.Minute, ts.Time.Second, 0, time.UTC)
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("%sT%sZ", ts.Date, ts.Time)
}

// TimeValue parses a bare HH:MM:SS time of day.  Fields may be one or two
// digits; the assembled value must be a valid clock time.
func TimeValue(c Cursor) (Time, Cursor, error) {
	hour, cur, err := clockField(c)
	if err != nil {
		return Time{}, cur, err
	}
	cur, err = expectByte(cur, ':')
	if err != nil {
		return Time{}, cur, err
	}
	minute, cur, err := clockField(cur)
	if err != nil {
		return Time{}, cur, err
	}
	cur, err = expectByte(cur, ':')
	if err != nil {
		return Time{}, cur, err
	}
	second, cur, err := clockField(cur)
	if err != nil {
		return Time{}, cur, err
	}
	t, err := NewTime(hour, minute, second)
	if err != nil {
		return Time{}, cur, c.errorf("%s", err)
	}
	return t, cur, nil
}

// DateValue parses a bare YYYY-MM-DD calendar date.  The year may be one
// to four digits, month and day one or two; the assembled value must be a
// real calendar day.
func DateValue(c Cursor) (Date, Cursor, error) {
	year, cur, err := yearField(c)
	if err != nil {
		return Date{}, cur, err
	}
	cur, err = expectByte(cur, '-')
	if err != nil {
		return Date{}, cur, err
	}
	month, cur, err := clockField(cur)
	if err != nil {
		return Date{}, cur, err
	}
	cur, err = expectByte(cur, '-')
	if err != nil {
		return Date{}, cur, err
	}
	day, cur, err := clockField(cur)
	if err != nil {
		return Date{}, cur, err
	}
	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, cur, c.errorf("%s", err)
	}
	return d, cur, nil
}

// TimestampValue parses a bare date and time joined by 'T' with a trailing
// 'Z'.  No offset other than UTC is representable.
func TimestampValue(c Cursor) (Timestamp, Cursor, error) {
	d, cur, err := DateValue(c)
	if err != nil {
		return Timestamp{}, cur, err
	}
	cur, err = expectByte(cur, 'T')
	if err != nil {
		return Timestamp{}, cur, err
	}
	t, cur, err := TimeValue(cur)
	if err != nil {
		return Timestamp{}, cur, err
	}
	cur, err = expectByte(cur, 'Z')
	if err != nil {
		return Timestamp{}, cur, err
	}
	return Timestamp{Date: d, Time: t}, cur, nil
}
