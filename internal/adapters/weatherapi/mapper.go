package weatherapi

import (
	"time"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
)

// clockLayout is the provider's 12-hour timestamp format.
const clockLayout = "03:04 PM"

// extractWeather pulls the two current-conditions signals out of a
// decoded provider payload.
func extractWeather(raw currentResponse) (domain.WeatherSignals, error) {
	if raw.Current.FeelslikeC == nil {
		return domain.WeatherSignals{}, &ports.MissingFieldError{Field: "current.feelslike_c"}
	}
	if raw.Current.PrecipMM == nil {
		return domain.WeatherSignals{}, &ports.MissingFieldError{Field: "current.precip_mm"}
	}

	return domain.WeatherSignals{
		FeelslikeC: *raw.Current.FeelslikeC,
		PrecipMM:   *raw.Current.PrecipMM,
	}, nil
}

// extractSuntime computes daylight duration from the sunrise/sunset
// clock times, both mapped onto the same nominal day. When sunset's
// clock time lands before sunrise's (possible near midnight at high
// latitudes), the difference is folded forward by 24h so the result is
// the duration the timestamps actually describe.
func extractSuntime(raw astronomyResponse) (domain.SuntimeSignal, error) {
	astro := raw.Astronomy.Astro
	if astro.Sunrise == "" {
		return domain.SuntimeSignal{}, &ports.MissingFieldError{Field: "astronomy.astro.sunrise"}
	}
	if astro.Sunset == "" {
		return domain.SuntimeSignal{}, &ports.MissingFieldError{Field: "astronomy.astro.sunset"}
	}

	sunrise, err := time.Parse(clockLayout, astro.Sunrise)
	if err != nil {
		return domain.SuntimeSignal{}, &ports.ParseError{Field: "astronomy.astro.sunrise", Value: astro.Sunrise, Err: err}
	}
	sunset, err := time.Parse(clockLayout, astro.Sunset)
	if err != nil {
		return domain.SuntimeSignal{}, &ports.ParseError{Field: "astronomy.astro.sunset", Value: astro.Sunset, Err: err}
	}

	hours := sunset.Sub(sunrise).Hours()
	if hours < 0 {
		hours += 24
	}

	return domain.SuntimeSignal{DaylightHours: hours}, nil
}
