// Package assistant 实现站点聊天挂件的脚本化应答：
// 小写化输入后按固定顺序匹配关键词组，第一组命中即返回对应回复。
// 没有任何自然语言理解，也不在轮次之间保留状态。
package assistant

import (
	"context"
	"strings"
	"time"
)

// Greeting 是会话的固定开场白。
const Greeting = "System initialized. I am your VFX Assistant. How can I help you navigate this portfolio?"

const fallbackReply = "I am a portfolio assistant. I can help you find specific skills, projects, or contact information."

type rule struct {
	keywords []string
	reply    string
}

// 规则按声明顺序匹配，先命中者生效。
var rules = []rule{
	{
		keywords: []string{"contact", "email"},
		reply:    "You can reach Jules at contact@julesrukundo.com or use the form in the Contact section.",
	},
	{
		keywords: []string{"houdini", "software"},
		reply:    "Jules is an expert in Houdini, specializing in Pyro, RBD, and procedural systems.",
	},
	{
		keywords: []string{"project", "work"},
		reply:    "Check out the \"Featured Works\" section to see the latest breakdown of Neon Dystopia and other projects.",
	},
}

// Reply 返回针对一条用户输入的应答。匹配大小写不敏感，
// 关键词出现在输入的任意位置都算命中。
func Reply(input string) string {
	lower := strings.ToLower(input)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return fallbackReply
}

// Responder 在应答前模拟固定的“思考”延迟。
type Responder struct {
	delay time.Duration
}

// NewResponder 构造 Responder。delay 为 0 表示即时应答。
func NewResponder(delay time.Duration) *Responder {
	if delay < 0 {
		delay = 0
	}
	return &Responder{delay: delay}
}

// Respond 等待模拟延迟后返回应答；上下文取消时立即返回错误。
func (r *Responder) Respond(ctx context.Context, input string) (string, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return Reply(input), nil
}
