// Package timezone holds the application timezone and the clock used to read "now".
//
// Usage Examples:
//
//  1. Reading the current instant in the app timezone:
//     now := timezone.System().Now()
//
//  2. Injecting a clock into a service so tests control "now":
//     svc := service.New(repo, timezone.Fixed(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)))
//
//  3. Parsing a custom wall-clock time on a given day:
//     day, _ := timezone.ParseDay("2025-01-15")
//     t, err := timezone.ParseClock(day, "14:30", time.FixedZone("AEST", 10*3600))
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use IANA names ("UTC", "Asia/Jakarta").
package timezone
