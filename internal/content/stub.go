package content

import (
	"context"

	"vfxfolio/internal/database"
)

// StubStore 在数据库未配置时顶替真实存储：读取回落到默认内容，
// 写入一律返回 ErrNotConfigured，让站点以只读方式继续工作而不是崩溃。
type StubStore struct{}

// NewStubStore 构造 StubStore。
func NewStubStore() *StubStore { return &StubStore{} }

var _ Store = (*StubStore)(nil)

func (*StubStore) Hero(context.Context) (*database.HeroContent, error) {
	row := DefaultHero()
	return &row, nil
}

func (*StubStore) SaveHero(context.Context, database.HeroContent) (*database.HeroContent, error) {
	return nil, ErrNotConfigured
}

func (*StubStore) About(context.Context) (*database.AboutContent, error) {
	row := DefaultAbout()
	return &row, nil
}

func (*StubStore) SaveAbout(context.Context, database.AboutContent) (*database.AboutContent, error) {
	return nil, ErrNotConfigured
}

func (*StubStore) ContactInfo(context.Context) (*database.ContactInfo, error) {
	row := DefaultContactInfo()
	return &row, nil
}

func (*StubStore) SaveContactInfo(context.Context, database.ContactInfo) (*database.ContactInfo, error) {
	return nil, ErrNotConfigured
}

func (*StubStore) Services(context.Context) ([]database.Service, error) {
	return DefaultServices(), nil
}

func (*StubStore) SaveService(context.Context, database.Service) (*database.Service, error) {
	return nil, ErrNotConfigured
}

func (*StubStore) DeleteService(context.Context, uint) error { return ErrNotConfigured }

func (*StubStore) Skills(context.Context) ([]database.Skill, error) {
	return DefaultSkills(), nil
}

func (*StubStore) SaveSkill(context.Context, database.Skill) (*database.Skill, error) {
	return nil, ErrNotConfigured
}

func (*StubStore) DeleteSkill(context.Context, string) error { return ErrNotConfigured }

func (*StubStore) Projects(context.Context) ([]database.Project, error) {
	return DefaultProjects(), nil
}

func (*StubStore) Project(context.Context, uint) (*database.Project, error) {
	return nil, ErrNotFound
}

func (*StubStore) SaveProject(context.Context, database.Project) (*database.Project, error) {
	return nil, ErrNotConfigured
}

func (*StubStore) DeleteProject(context.Context, uint) error { return ErrNotConfigured }

// IsEditor 在降级模式下永远返回否（fail closed）。
func (*StubStore) IsEditor(context.Context, uint) (bool, error) { return false, nil }
