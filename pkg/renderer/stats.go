package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MinSamples     int           // Fewest samples taken by any pixel
	MaxSamplesUsed int           // Most samples taken by any pixel
	Duration       time.Duration // Wall time spent rendering
}

// collectStats summarizes the sample counts recorded in film
func collectStats(film *Film, duration time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels: film.width * film.height,
		Duration:    duration,
	}
	if stats.TotalPixels == 0 {
		return stats
	}

	stats.MinSamples = int(film.samples[0])
	for _, n := range film.samples {
		stats.TotalSamples += int(n)
		stats.MinSamples = min(stats.MinSamples, int(n))
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, int(n))
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// AverageLuminance returns the mean linear luminance of the film
func AverageLuminance(film *Film) float64 {
	if film.width*film.height == 0 {
		return 0
	}
	total := 0.0
	for y := 0; y < film.height; y++ {
		for x := 0; x < film.width; x++ {
			total += film.Color(x, y).Luminance()
		}
	}
	return total / float64(film.width*film.height)
}
