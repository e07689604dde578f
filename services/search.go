package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"staybook/dto"
	"staybook/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

var starPattern = regexp.MustCompile(`(\d+)\s*star`)

// extractRatingFromQuery lấy xếp hạng sao nếu query chứa "N star"
func extractRatingFromQuery(query string) int {
	match := starPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}
	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return rating
}

// prepareUniqueCities gom các city duy nhất (đã chuẩn hóa) làm input cho closestmatch
func prepareUniqueCities(hotels []models.Hotel) []string {
	unique := make(map[string]bool)
	for _, hotel := range hotels {
		if hotel.City != "" {
			unique[normalizeInput(hotel.City)] = true
		}
	}

	cities := make([]string, 0, len(unique))
	for city := range unique {
		cities = append(cities, city)
	}
	return cities
}

// calculateHotelScore tính điểm phù hợp của một hotel với query
func calculateHotelScore(query string, hotel models.Hotel, cmCity *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(hotel.Name)
	if strings.Contains(normalizedQuery, normalizedName) || strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 12
	}

	if cmCity != nil && cmCity.Closest(normalizedQuery) == normalizeInput(hotel.City) {
		score += 13
	}
	if hotel.Location != "" && strings.Contains(normalizedQuery, normalizeInput(hotel.Location)) {
		score += 8
	}
	if hotel.Category != "" && strings.Contains(normalizedQuery, normalizeInput(hotel.Category)) {
		score += 6
	}

	if rating := extractRatingFromQuery(normalizedQuery); rating != -1 && int(hotel.Rating+0.5) == rating {
		score += 15
	}

	return score
}

// SearchHotels chấm điểm song song từng hotel và trả về kết quả giảm dần theo score
func (s *HotelService) SearchHotels(query string) ([]dto.ScoredHotel, error) {
	var hotels []models.Hotel
	if err := s.db.Find(&hotels).Error; err != nil {
		return nil, err
	}

	cmCity := createMatcher(prepareUniqueCities(hotels))

	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := calculateHotelScore(query, hotel, cmCity)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{Hotel: hotel, Score: score}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredHotel
	for sh := range scoreCh {
		scored = append(scored, sh)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}
