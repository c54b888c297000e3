// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/application/usecase/record"
	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/test/integration/mock"
)

// pinnedCategoryName is the reserved category name the suite runs with.
const pinnedCategoryName = "Pinned"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Wiring
	db           *mock.Db
	clock        *mock.Clock
	trackerRepo  adapter.TrackerRepository
	categoryRepo adapter.CategoryRepository
	recordRepo   adapter.RecordRepository

	// Trackers seeded by Given steps, by display name.
	trackerIDs map[string]uuid.UUID
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerGivenSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application over the in-memory store
// and starts an HTTP server for the scenario.
func newTestContext() (*TestContext, error) {
	db := mock.NewDb()
	if err := db.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset database: %w", err)
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, fmt.Errorf("failed to clear redis: %w", err)
	}

	tc := &TestContext{
		db:         db,
		clock:      mock.NewClock(),
		trackerIDs: make(map[string]uuid.UUID),
	}

	tc.categoryRepo = persistence.NewCategoryRepository(db.DbConn)
	tc.trackerRepo = persistence.NewTrackerRepository(db.DbConn)
	tc.recordRepo = persistence.NewRecordRepository(db.DbConn)
	settingRepo := persistence.NewSettingRepository(db.DbConn)
	statsCache := adapters.NewRedisStatsCache(redisClient, time.Minute)

	ensurePinned := category.NewEnsurePinnedCategoryUseCase(tc.categoryRepo, settingRepo, pinnedCategoryName)
	if err := ensurePinned.Execute(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to prepare pinned category: %w", err)
	}

	healthController := controller.NewHealthController(func() bool { return true })
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(tc.categoryRepo, tc.trackerRepo, pinnedCategoryName),
		category.NewCreateCategoryUseCase(tc.categoryRepo, pinnedCategoryName),
	)
	trackerController := controller.NewTrackerController(
		tracker.NewListTrackersUseCase(tc.trackerRepo, tc.categoryRepo, tc.recordRepo, tc.clock, pinnedCategoryName),
		tracker.NewCreateTrackerUseCase(tc.trackerRepo, tc.categoryRepo),
		tracker.NewUpdateTrackerUseCase(tc.trackerRepo, tc.categoryRepo),
		tracker.NewDeleteTrackerUseCase(tc.trackerRepo, statsCache),
		tracker.NewPinTrackerUseCase(tc.trackerRepo, pinnedCategoryName),
		tracker.NewUnpinTrackerUseCase(tc.trackerRepo, tc.categoryRepo),
	)
	recordController := controller.NewRecordController(
		record.NewToggleRecordUseCase(tc.recordRepo, tc.trackerRepo, tc.clock, statsCache),
		record.NewGetStatisticsUseCase(tc.recordRepo, statsCache),
	)

	r := router.NewRouter(healthController, categoryController, trackerController, recordController)
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}

// registerGivenSteps registers the data seeding steps.
func registerGivenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^a category "([^"]*)" exists$`, aCategoryExists)
	ctx.Step(`^a habit "([^"]*)" in category "([^"]*)" scheduled on "([^"]*)"$`, aHabitExists)
	ctx.Step(`^an irregular event "([^"]*)" in category "([^"]*)"$`, anIrregularEventExists)
	ctx.Step(`^the tracker "([^"]*)" is pinned$`, theTrackerIsPinned)
	ctx.Step(`^the tracker "([^"]*)" is completed on "([^"]*)"$`, theTrackerIsCompletedOn)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the first listed category should be "([^"]*)"$`, theFirstListedCategoryShouldBe)
}

// Given step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func todayIs(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	// Mid-day so "today" is unambiguous in UTC.
	tc.clock.Set(day.Add(12 * time.Hour))
	return nil
}

func aCategoryExists(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	return tc.categoryRepo.Create(context.Background(), entity.NewCategory(name))
}

func aHabitExists(ctx context.Context, name, categoryName, weekdays string) error {
	tc := GetTestContext(ctx)

	schedule, err := parseWeekdays(weekdays)
	if err != nil {
		return err
	}

	t := entity.NewTracker(name, "✅", 1, schedule, categoryName)
	if err := tc.trackerRepo.Create(context.Background(), t, categoryName); err != nil {
		return err
	}
	tc.trackerIDs[name] = t.ID
	return nil
}

func anIrregularEventExists(ctx context.Context, name, categoryName string) error {
	tc := GetTestContext(ctx)

	t := entity.NewTracker(name, "🎟️", 1, entity.NewSchedule(), categoryName)
	if err := tc.trackerRepo.Create(context.Background(), t, categoryName); err != nil {
		return err
	}
	tc.trackerIDs[name] = t.ID
	return nil
}

func theTrackerIsPinned(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)

	id, ok := tc.trackerIDs[name]
	if !ok {
		return fmt.Errorf("unknown tracker %q", name)
	}
	uc := tracker.NewPinTrackerUseCase(tc.trackerRepo, pinnedCategoryName)
	_, err := uc.Execute(context.Background(), tracker.PinTrackerInput{TrackerID: id})
	return err
}

func theTrackerIsCompletedOn(ctx context.Context, name, date string) error {
	tc := GetTestContext(ctx)

	id, ok := tc.trackerIDs[name]
	if !ok {
		return fmt.Errorf("unknown tracker %q", name)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return tc.recordRepo.Create(context.Background(), id, day)
}

// When step implementations

// resolveEndpoint substitutes {Tracker Name} placeholders with the
// identifiers of seeded trackers.
func (tc *TestContext) resolveEndpoint(endpoint string) (string, error) {
	for strings.Contains(endpoint, "{") {
		start := strings.Index(endpoint, "{")
		end := strings.Index(endpoint, "}")
		if end < start {
			return "", fmt.Errorf("unbalanced placeholder in %q", endpoint)
		}
		name := endpoint[start+1 : end]
		id, ok := tc.trackerIDs[name]
		if !ok {
			return "", fmt.Errorf("unknown tracker %q in endpoint %q", name, endpoint)
		}
		endpoint = endpoint[:start] + id.String() + endpoint[end+1:]
	}
	return endpoint, nil
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	endpoint, err := tc.resolveEndpoint(endpoint)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, endpoint, bytes.NewBufferString(body.Content))
}

// Then step implementations

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response must not contain %q. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theFirstListedCategoryShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)

	var data struct {
		Categories []struct {
			Category string `json:"category"`
			Name     string `json:"name"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	if len(data.Categories) == 0 {
		return fmt.Errorf("no categories in response. Body: %s", string(tc.responseBody))
	}

	first := data.Categories[0].Category
	if first == "" {
		first = data.Categories[0].Name
	}
	if first != expected {
		return fmt.Errorf("expected first category %q, got %q", expected, first)
	}
	return nil
}

// parseWeekdays parses a comma-separated list of weekday names.
func parseWeekdays(list string) (entity.Schedule, error) {
	byName := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}

	var days []time.Weekday
	for _, part := range strings.Split(list, ",") {
		day, ok := byName[strings.TrimSpace(part)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, day)
	}
	return entity.NewSchedule(days...), nil
}
