package server

import (
	"strconv"
	"time"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer      = "ripple-api"
	tokenAudience    = "ripple-client"
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh"`
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Register handles user registration
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return respondServiceError(c, err)
	}

	pair, err := s.generateTokenPair(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

// Login handles user authentication, returning an access/refresh token pair
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	user, err := s.userRepo.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if user == nil {
		// Burn a hash comparison so missing users cost the same as bad passwords.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(req.Password))
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	pair, err := s.generateTokenPair(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in",
		"user_id", user.ID, "username", user.Username)

	return c.JSON(fiber.Map{
		"user":    user,
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The old refresh token's JTI is blacklisted so each refresh can only be
// used once.
func (s *Server) RefreshToken(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Refresh token is required"))
	}

	claims, err := s.parseToken(req.RefreshToken)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid or expired refresh token"))
	}

	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Token is not a refresh token"))
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && s.redis != nil {
		revoked, rerr := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
		if rerr == nil && revoked > 0 {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Refresh token has been revoked"))
		}
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid subject claim"))
	}

	pair, err := s.generateTokenPair(uint(userID))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Rotate: old refresh token can no longer be replayed.
	s.blacklistClaims(c, claims)

	return c.JSON(pair)
}

// Logout revokes the presented access token and, if supplied, the refresh token
func (s *Server) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		if claims, err := s.parseToken(authHeader[7:]); err == nil {
			s.blacklistClaims(c, claims)
		}
	}

	var req refreshRequest
	if err := c.BodyParser(&req); err == nil && req.RefreshToken != "" {
		if claims, err := s.parseToken(req.RefreshToken); err == nil {
			s.blacklistClaims(c, claims)
		}
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// parseToken validates signature, issuer and audience and returns the claims.
func (s *Server) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("invalid token claims")
	}
	return claims, nil
}

// blacklistClaims marks a token's JTI as revoked in Redis for the token's
// remaining lifetime. Best effort: without Redis the token simply expires.
func (s *Server) blacklistClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	jti, _ := claims["jti"].(string)
	if jti == "" || s.redis == nil {
		return
	}
	ttl := refreshTokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl).Err(); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "failed to blacklist token",
			"error", err)
	}
}

// generateTokenPair issues a short-lived access token and a long-lived
// refresh token for the given user.
func (s *Server) generateTokenPair(userID uint) (*tokenPair, error) {
	access, err := s.signToken(userID, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(userID, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &tokenPair{Access: access, Refresh: refresh}, nil
}

func (s *Server) signToken(userID uint, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"typ": typ,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
