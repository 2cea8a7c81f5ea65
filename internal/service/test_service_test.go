package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"gorm.io/gorm"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{" A_Pple! ", "apple"},
		{"apple", "apple"},
		{"  Don't  ", "dont"},
		{"CO2 emission", "co2 emission"},
		{"re-enter", "reenter"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeAnswer(tt.input); got != tt.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	// Close misses must not normalize into a match.
	if normalizeAnswer("apples") == normalizeAnswer("apple") {
		t.Error("normalizeAnswer collapsed a plural into the singular")
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{20, 30, 67},
		{1, 3, 33},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds up
		{0, 7, 0},
		{7, 7, 100},
	}
	for _, tt := range tests {
		if got := roundScore(tt.correct, tt.total); got != tt.want {
			t.Errorf("roundScore(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

// testFixture wires a TestService over a fresh database with one user, one
// week, and a three-word quiz already frozen.
type testFixture struct {
	db        *gorm.DB
	svc       TestService
	user      model.User
	week      model.TestWeek
	testWords []model.TestWord
	words     []model.VocabularyWord
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	db := newTestDB(t)

	svc := NewTestService(
		repository.NewUserRepository(db),
		repository.NewTestWeekRepository(db),
		repository.NewTestWordRepository(db),
		repository.NewTestResultRepository(db),
		repository.NewTestAnswerRepository(db),
		db,
	)

	user := seedUser(t, db, "jaeho")
	saturday := day(2025, time.October, 25)
	week := seedWeek(t, db, "10월 4주차", saturday)

	words := []model.VocabularyWord{
		seedWord(t, db, day(2025, time.October, 17), "apple", "사과"),
		seedWord(t, db, day(2025, time.October, 20), "banana", "바나나"),
		seedWord(t, db, day(2025, time.October, 21), "cherry", "체리"),
	}
	testWords := seedTestWords(t, db, week.ID, words)

	return &testFixture{db: db, svc: svc, user: user, week: week, testWords: testWords, words: words}
}

func (f *testFixture) start(t *testing.T) *dto.TestStartResponse {
	t.Helper()
	resp, err := f.svc.StartTest(dto.TestStartRequest{UserID: f.user.ID, TestWeekID: f.week.ID})
	if err != nil {
		t.Fatalf("StartTest failed: %v", err)
	}
	return resp
}

func (f *testFixture) submitAll(t *testing.T, resultID uint, answers map[uint]string) *dto.TestSubmitResponse {
	t.Helper()
	req := dto.TestSubmitRequest{}
	for _, tw := range f.testWords {
		req.Answers = append(req.Answers, dto.AnswerItem{TestWordID: tw.ID, UserAnswer: answers[tw.ID]})
	}
	resp, err := f.svc.SubmitTest(resultID, req)
	if err != nil {
		t.Fatalf("SubmitTest failed: %v", err)
	}
	return resp
}

func TestStartTestCreatesAttempt(t *testing.T) {
	f := newTestFixture(t)

	resp := f.start(t)
	if resp.Status != "created" {
		t.Errorf("Status = %q, want %q", resp.Status, "created")
	}
	if resp.Score != nil {
		t.Errorf("Score = %v, want nil on a fresh attempt", *resp.Score)
	}
	if resp.PreviousScore != nil {
		t.Error("PreviousScore set on a first attempt")
	}
	if resp.Message != "새 시험이 시작되었습니다." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestStartTestRetakeKeepsID(t *testing.T) {
	f := newTestFixture(t)

	first := f.start(t)
	submitted := f.submitAll(t, first.TestResultID, map[uint]string{
		f.testWords[0].ID: "apple",
		f.testWords[1].ID: "banana",
		f.testWords[2].ID: "wrong",
	})

	retry, err := f.svc.StartTest(dto.TestStartRequest{UserID: f.user.ID, TestWeekID: f.week.ID})
	if err != nil {
		t.Fatalf("Retake StartTest failed: %v", err)
	}
	if retry.TestResultID != first.TestResultID {
		t.Errorf("Retake got result %d, want the original %d", retry.TestResultID, first.TestResultID)
	}
	if retry.Status != "retry" {
		t.Errorf("Status = %q, want %q", retry.Status, "retry")
	}
	if retry.Score != nil {
		t.Error("Score not nulled on retake")
	}
	if retry.PreviousScore == nil || *retry.PreviousScore != submitted.Score {
		t.Errorf("PreviousScore = %v, want %d", retry.PreviousScore, submitted.Score)
	}

	var answerCount int64
	if err := f.db.Model(&model.TestAnswer{}).Where("test_result_id = ?", first.TestResultID).Count(&answerCount).Error; err != nil {
		t.Fatalf("Answer count failed: %v", err)
	}
	if answerCount != 0 {
		t.Errorf("Retake left %d answers behind", answerCount)
	}

	var stored model.TestResult
	if err := f.db.First(&stored, first.TestResultID).Error; err != nil {
		t.Fatalf("Result reload failed: %v", err)
	}
	if stored.Score != nil {
		t.Errorf("Stored score = %v, want nil after retake", *stored.Score)
	}
}

func TestStartTestUnknownUserOrWeek(t *testing.T) {
	f := newTestFixture(t)

	if _, err := f.svc.StartTest(dto.TestStartRequest{UserID: 999, TestWeekID: f.week.ID}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unknown user error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.StartTest(dto.TestStartRequest{UserID: f.user.ID, TestWeekID: 999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unknown week error = %v, want ErrNotFound", err)
	}
}

func TestSubmitTestGrades(t *testing.T) {
	f := newTestFixture(t)
	started := f.start(t)

	resp := f.submitAll(t, started.TestResultID, map[uint]string{
		f.testWords[0].ID: " A_Pple! ", // normalizes to a correct answer
		f.testWords[1].ID: "banana",
		f.testWords[2].ID: "grape",
	})

	if resp.CorrectCount != 2 || resp.IncorrectCount != 1 {
		t.Errorf("Counts = %d correct / %d incorrect, want 2/1", resp.CorrectCount, resp.IncorrectCount)
	}
	if resp.Score != 67 {
		t.Errorf("Score = %d, want 67", resp.Score)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("Results = %d entries, want 3", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.TestAnswerID == 0 {
			t.Errorf("Answer for word %d has no identifier", r.TestWordID)
		}
	}

	var stored model.TestResult
	if err := f.db.First(&stored, started.TestResultID).Error; err != nil {
		t.Fatalf("Result reload failed: %v", err)
	}
	if stored.Score == nil || *stored.Score != 67 {
		t.Errorf("Stored score = %v, want 67", stored.Score)
	}
}

func TestSubmitTestResubmitOverwrites(t *testing.T) {
	f := newTestFixture(t)
	started := f.start(t)

	f.submitAll(t, started.TestResultID, map[uint]string{
		f.testWords[0].ID: "wrong",
		f.testWords[1].ID: "wrong",
		f.testWords[2].ID: "wrong",
	})
	resp := f.submitAll(t, started.TestResultID, map[uint]string{
		f.testWords[0].ID: "apple",
		f.testWords[1].ID: "banana",
		f.testWords[2].ID: "cherry",
	})

	if resp.Score != 100 {
		t.Errorf("Score after resubmit = %d, want 100", resp.Score)
	}

	var answerCount int64
	if err := f.db.Model(&model.TestAnswer{}).Where("test_result_id = ?", started.TestResultID).Count(&answerCount).Error; err != nil {
		t.Fatalf("Answer count failed: %v", err)
	}
	if answerCount != 3 {
		t.Errorf("Resubmission left %d answer rows, want 3", answerCount)
	}
}

func TestSubmitTestRejectsForeignWord(t *testing.T) {
	f := newTestFixture(t)
	started := f.start(t)

	_, err := f.svc.SubmitTest(started.TestResultID, dto.TestSubmitRequest{
		Answers: []dto.AnswerItem{
			{TestWordID: f.testWords[0].ID, UserAnswer: "apple"},
			{TestWordID: 9999, UserAnswer: "ghost"},
		},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Foreign word error = %v, want ErrValidation", err)
	}

	// Nothing may be written when validation fails.
	var answerCount int64
	if err := f.db.Model(&model.TestAnswer{}).Where("test_result_id = ?", started.TestResultID).Count(&answerCount).Error; err != nil {
		t.Fatalf("Answer count failed: %v", err)
	}
	if answerCount != 0 {
		t.Errorf("Rejected submission wrote %d answers", answerCount)
	}
}

func TestSubmitTestValidation(t *testing.T) {
	f := newTestFixture(t)
	started := f.start(t)

	if _, err := f.svc.SubmitTest(started.TestResultID, dto.TestSubmitRequest{}); !errors.Is(err, ErrValidation) {
		t.Errorf("Empty submission error = %v, want ErrValidation", err)
	}
	if _, err := f.svc.SubmitTest(9999, dto.TestSubmitRequest{
		Answers: []dto.AnswerItem{{TestWordID: f.testWords[0].ID, UserAnswer: "apple"}},
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unknown result error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTest(t *testing.T) {
	f := newTestFixture(t)
	started := f.start(t)
	f.submitAll(t, started.TestResultID, map[uint]string{
		f.testWords[0].ID: "apple",
		f.testWords[1].ID: "banana",
		f.testWords[2].ID: "cherry",
	})

	if err := f.svc.DeleteTest(started.TestResultID); err != nil {
		t.Fatalf("DeleteTest failed: %v", err)
	}

	var resultCount, answerCount int64
	if err := f.db.Model(&model.TestResult{}).Where("id = ?", started.TestResultID).Count(&resultCount).Error; err != nil {
		t.Fatalf("Result count failed: %v", err)
	}
	if err := f.db.Model(&model.TestAnswer{}).Where("test_result_id = ?", started.TestResultID).Count(&answerCount).Error; err != nil {
		t.Fatalf("Answer count failed: %v", err)
	}
	if resultCount != 0 || answerCount != 0 {
		t.Errorf("Delete left %d results and %d answers", resultCount, answerCount)
	}

	if err := f.svc.DeleteTest(started.TestResultID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Deleting a missing attempt = %v, want ErrNotFound", err)
	}
}

func TestStartTestConcurrent(t *testing.T) {
	f := newTestFixture(t)

	const workers = 8
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := f.svc.StartTest(dto.TestStartRequest{UserID: f.user.ID, TestWeekID: f.week.ID})
			errs <- err
		}()
	}
	for i := 0; i < workers; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent StartTest failed: %v", err)
		}
	}

	var count int64
	if err := f.db.Model(&model.TestResult{}).
		Where("user_id = ? AND test_week_id = ?", f.user.ID, f.week.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("Result count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Concurrent starts produced %d attempts, want 1", count)
	}
}

func TestKeyedMutexIsolatesKeys(t *testing.T) {
	var km keyedMutex

	unlockA := km.lock("1:1")
	done := make(chan struct{})
	go func() {
		unlock := km.lock("2:2")
		unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Lock on a different key blocked")
	}
	unlockA()

	// Same key must serialize.
	unlock := km.lock("1:1")
	unlock()
}
