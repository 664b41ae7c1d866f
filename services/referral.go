package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
	"learnhub/store"
)

const (
	inviterRewardXP = 200
	inviteeRewardXP = 500

	referralCodeAttempts = 5
)

// Register creates a new user and, when a referral code matches an existing
// user, links the two and grants the bidirectional reward: +200 XP to the
// inviter, +500 XP to the new user. The linkage is one-directional and
// permanent. It returns the new user and whether a reward was granted.
func (s *GamificationService) Register(ctx context.Context, name, email, passwordHash, referralCode string) (*models.User, bool, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, false, fmt.Errorf("email %s is already registered", email)
	} else if err != store.ErrNotFound {
		return nil, false, err
	}

	today := s.today()
	user := &models.User{
		ID:            primitive.NewObjectID(),
		Email:         email,
		DisplayName:   name,
		PasswordHash:  passwordHash,
		XP:            0,
		Level:         1,
		Streak:        1,
		LastLoginDate: today,
		Badges:        []string{},
		ReferralCode:  s.generateReferralCode(ctx, name),
		CreatedAt:     s.now(),
	}

	rewardGranted := false
	leveledUp := false
	if referralCode != "" {
		inviter, err := s.users.GetByReferralCode(ctx, strings.ToUpper(referralCode))
		if err != nil && err != store.ErrNotFound {
			return nil, false, err
		}
		if err == nil && inviter.Email != email {
			user.ReferredBy = inviter.ID
			user.XP += inviteeRewardXP
			leveledUp = s.applyLevel(user)
			s.prependLog(user, models.ActivityLogEntry{
				Date:     today,
				XPEarned: inviteeRewardXP,
				Type:     models.ActivityReferral,
				Detail:   "Joined with referral code from " + inviter.DisplayName,
			})

			inviter.InvitedFriends = append(inviter.InvitedFriends, user.ID)
			inviter.XP += inviterRewardXP
			inviterLeveledUp := s.applyLevel(inviter)
			if err := s.users.Save(ctx, inviter); err != nil {
				return nil, false, err
			}
			if inviterLeveledUp {
				s.notifyLevelUp(ctx, inviter)
			}
			s.publishUserUpdated(inviter)
			rewardGranted = true
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, false, err
	}
	if leveledUp {
		s.notifyLevelUp(ctx, user)
	}
	s.publishUserUpdated(user)
	return user, rewardGranted, nil
}

// generateReferralCode derives a code from the user's name plus a random
// numeric suffix, retrying against the directory so two users never share a
// code. Codes are stored upper-cased and compared case-insensitively.
func (s *GamificationService) generateReferralCode(ctx context.Context, name string) string {
	prefix := codePrefix(name)
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code := fmt.Sprintf("%s%04d", prefix, rand.Intn(10000))
		if _, err := s.users.GetByReferralCode(ctx, code); err == store.ErrNotFound {
			return code
		}
	}
	// Directory is crowded around this prefix; widen the suffix.
	return fmt.Sprintf("%s%08d", prefix, rand.Intn(100000000))
}

// codePrefix keeps the first four letters of the name, upper-cased.
func codePrefix(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 4 {
				break
			}
		}
	}
	if len(letters) == 0 {
		return "USER"
	}
	return string(letters)
}
