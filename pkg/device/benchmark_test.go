package device_test

import (
	"testing"

	"github.com/dmitrymomot/devicedetector/pkg/device"
)

var (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariMobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	androidTabletUA = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	smartTVUA       = "Mozilla/5.0 (SMART-TV; Linux; Tizen 5.0) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/2.2 Chrome/63.0.3239.84 TV Safari/537.36"
	robotUA         = "curl/8.4.0"
)

// prevents the compiler from eliding calls
var benchCategory device.Category

func BenchmarkClassify_ChromeDesktop(b *testing.B) {
	benchmarkClassify(b, chromeDesktopUA)
}

func BenchmarkClassify_SafariMobile(b *testing.B) {
	benchmarkClassify(b, safariMobileUA)
}

func BenchmarkClassify_AndroidTablet(b *testing.B) {
	benchmarkClassify(b, androidTabletUA)
}

func BenchmarkClassify_SmartTV(b *testing.B) {
	benchmarkClassify(b, smartTVUA)
}

func BenchmarkClassify_Robot(b *testing.B) {
	benchmarkClassify(b, robotUA)
}

func BenchmarkClassify_Mixed(b *testing.B) {
	kw := device.DefaultKeywords()
	records := []device.Record{
		device.NewRecord(chromeDesktopUA, "", "", ""),
		device.NewRecord(safariMobileUA, "", "", ""),
		device.NewRecord(androidTabletUA, "", "", ""),
		device.NewRecord(smartTVUA, "", "", ""),
		device.NewRecord(robotUA, "", "", ""),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchCategory = device.Classify(records[i%len(records)], kw)
	}
}

func benchmarkClassify(b *testing.B, ua string) {
	b.Helper()
	kw := device.DefaultKeywords()
	rec := device.NewRecord(ua, "", "", "")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchCategory = device.Classify(rec, kw)
	}
}
